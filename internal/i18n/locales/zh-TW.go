package locales

// MessagesZhTW Traditional Chinese (Taiwan) translations
var MessagesZhTW = map[string]string{
	// Common messages
	"success":        "操作成功",
	"common.success": "成功",
	"error":          "操作失敗",
	"unauthorized":   "未授權",
	"forbidden":      "禁止存取",
	"not_found":      "找不到資源",
	"bad_request":    "請求格式錯誤",
	"internal_error": "內部錯誤",
	"rate_limited":   "請求過於頻繁，請稍後再試",

	// Authentication related
	"auth.invalid_key":  "存取密碼無效",
	"auth.key_required": "需要存取密碼",

	// Translation related
	"translate.empty_sentence":       "句子不能為空",
	"translate.too_long":             "句子過長（最多 {{.max}} 個字元）",
	"translate.unsupported_language": "不支援的目標語言：{{.lang}}",
	"translate.injection_detected":   "輸入包含不允許的指令",
	"translate.model_failed":         "語言模型回傳了無法使用的回應",
	"translate.model_timeout":        "語言模型回應逾時",

	// Quiz related
	"quiz.not_found":   "測驗不存在或已過期",
	"quiz.no_history":  "學習紀錄不足，暫時無法出題",
	"quiz.graded":      "已完成評分",
	"quiz.bad_request": "測驗答案不能為空",

	// Feedback related
	"feedback.received":      "已收到回饋，謝謝",
	"feedback.cache_cleared": "已清除快取的翻譯",

	// Review (spaced repetition) related
	"srs.saved":     "已儲存複習進度",
	"srs.not_found": "此使用者沒有複習資料",

	// Export related
	"anki.exported": "已匯出 Anki 牌組",

	// Validation related
	"validation.invalid_gender":    "性別值無效，必須是 'neutral'、'male' 或 'female'",
	"validation.invalid_formality": "語體值無效，必須是 'polite' 或 'casual'",
	"validation.invalid_user_id":   "使用者 ID 格式無效",
	"validation.missing_word":      "必須提供單字",
}
