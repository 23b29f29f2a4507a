package types

type OutputUsers struct {
	Users []User `json:"users"`
}

type OutputSendMail struct {
	Message string `json:"message"`
	Mail    *Mail  `json:"mail"`
}

type OutputMails struct {
	Mails []*Mail `json:"mails"`
}

type OutputUnreadCount struct {
	UnreadCount int `json:"unreadCount"`
}

type OutputMessage struct {
	Message string `json:"message"`
}
