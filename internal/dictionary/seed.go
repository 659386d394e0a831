package dictionary

// seedData is a small CC-CEDICT excerpt covering the vocabulary that shows up
// constantly in beginner travel and conversation sentences. Format matches
// cedict_ts.u8 so the same parser handles both.
const seedData = `# CC-CEDICT seed excerpt
我 我 [wo3] /I/me/my/
你 你 [ni3] /you/
他 他 [ta1] /he/him/
她 她 [ta1] /she/her/
我們 我们 [wo3 men5] /we/us/
你們 你们 [ni3 men5] /you (plural)/
他們 他们 [ta1 men5] /they/
這 这 [zhe4] /this/these/
那 那 [na4] /that/those/
個 个 [ge4] /(general classifier)/
有 有 [you3] /to have/there is/
沒有 没有 [mei2 you3] /to not have/there is not/
很 很 [hen3] /very/quite/
好 好 [hao3] /good/well/okay/
不 不 [bu4] /not/no/
想 想 [xiang3] /to want/to think/to miss/
去 去 [qu4] /to go/
來 来 [lai2] /to come/
吃 吃 [chi1] /to eat/
喝 喝 [he1] /to drink/
買 买 [mai3] /to buy/
看 看 [kan4] /to look/to watch/to read/
說 说 [shuo1] /to speak/to say/
請 请 [qing3] /please/to invite/
謝 谢 [xie4] /to thank/surname Xie/
謝謝 谢谢 [xie4 xie5] /thank you/thanks/
對不起 对不起 [dui4 bu5 qi3] /sorry/excuse me/
抱歉 抱歉 [bao4 qian4] /to be sorry/to feel apologetic/
再見 再见 [zai4 jian4] /goodbye/see you again/
水 水 [shui3] /water/
茶 茶 [cha2] /tea/
飯 饭 [fan4] /cooked rice/meal/
咖啡 咖啡 [ka1 fei1] /coffee/
啤酒 啤酒 [pi2 jiu3] /beer/
菜單 菜单 [cai4 dan1] /menu/
帳單 帐单 [zhang4 dan1] /bill/check/
錢 钱 [qian2] /money/surname Qian/
多少 多少 [duo1 shao3] /how much/how many/
多少錢 多少钱 [duo1 shao3 qian2] /how much money/how much does it cost/
計程車 计程车 [ji4 cheng2 che1] /taxi (Tw)/
公車 公车 [gong1 che1] /bus (Tw)/
火車 火车 [huo3 che1] /train/
旅館 旅馆 [lv3 guan3] /hotel/inn/
餐廳 餐厅 [can1 ting1] /restaurant/dining hall/
酒吧 酒吧 [jiu3 ba1] /bar/pub/
商店 商店 [shang1 dian4] /store/shop/
廁所 厕所 [ce4 suo3] /toilet/restroom/
哪裡 哪里 [na3 li5] /where/
什麼 什么 [shen2 me5] /what/
為什麼 为什么 [wei4 shen2 me5] /why/
怎麼 怎么 [zen3 me5] /how/
可以 可以 [ke3 yi3] /can/may/okay/
今天 今天 [jin1 tian1] /today/
明天 明天 [ming2 tian1] /tomorrow/
昨天 昨天 [zuo2 tian1] /yesterday/
現在 现在 [xian4 zai4] /now/at present/
時間 时间 [shi2 jian1] /time/
朋友 朋友 [peng2 you5] /friend/
學生 学生 [xue2 sheng1] /student/
老師 老师 [lao3 shi1] /teacher/
喜歡 喜欢 [xi3 huan1] /to like/to be fond of/
愛 爱 [ai4] /to love/affection/
中文 中文 [Zhong1 wen2] /Chinese language/
英文 英文 [Ying1 wen2] /English language/
台灣 台湾 [Tai2 wan1] /Taiwan/
手機 手机 [shou3 ji1] /mobile phone/
電子郵件 电子邮件 [dian4 zi3 you2 jian4] /email/
應用程式 应用程式 [ying4 yong4 cheng2 shi4] /application/app (Tw)/
網路 网路 [wang3 lu4] /network/internet (Tw)/
無線 无线 [wu2 xian4] /wireless/
幫 帮 [bang1] /to help/to assist/
知道 知道 [zhi1 dao4] /to know/to be aware of/
等 等 [deng3] /to wait/et cetera/
走 走 [zou3] /to walk/to go/to leave/
`
