package locales

// MessagesJaJP Japanese translations
var MessagesJaJP = map[string]string{
	// Common messages
	"success":        "操作が成功しました",
	"common.success": "成功",
	"error":          "操作に失敗しました",
	"unauthorized":   "認証されていません",
	"forbidden":      "アクセスが禁止されています",
	"not_found":      "見つかりません",
	"bad_request":    "リクエストが不正です",
	"internal_error": "内部エラー",
	"rate_limited":   "リクエストが多すぎます。しばらくお待ちください",

	// Authentication related
	"auth.invalid_key":  "アクセスパスワードが無効です",
	"auth.key_required": "アクセスパスワードが必要です",

	// Translation related
	"translate.empty_sentence":       "文を入力してください",
	"translate.too_long":             "文が長すぎます（最大 {{.max}} 文字）",
	"translate.unsupported_language": "対応していない言語です：{{.lang}}",
	"translate.injection_detected":   "入力に許可されていない指示が含まれています",
	"translate.model_failed":         "言語モデルの応答を利用できませんでした",
	"translate.model_timeout":        "言語モデルの応答がタイムアウトしました",

	// Quiz related
	"quiz.not_found":   "クイズが存在しないか期限切れです",
	"quiz.no_history":  "クイズを作るには学習履歴が足りません",
	"quiz.graded":      "採点が完了しました",
	"quiz.bad_request": "クイズの回答を入力してください",

	// Feedback related
	"feedback.received":      "フィードバックを受け付けました",
	"feedback.cache_cleared": "キャッシュされた翻訳を削除しました",

	// Review (spaced repetition) related
	"srs.saved":     "復習の進捗を保存しました",
	"srs.not_found": "このユーザーの復習データがありません",

	// Export related
	"anki.exported": "Anki デッキを書き出しました",

	// Validation related
	"validation.invalid_gender":    "性別の値が無効です。'neutral'、'male'、'female' のいずれかを指定してください",
	"validation.invalid_formality": "丁寧さの値が無効です。'polite' か 'casual' を指定してください",
	"validation.invalid_user_id":   "ユーザー ID の形式が無効です",
	"validation.missing_word":      "単語を指定してください",
}
