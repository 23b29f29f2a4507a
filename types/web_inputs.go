package types

// for sending a mail
type InputSendMail struct {
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	// optional; empty or unrecognized values fall back to normal
	Priority string `json:"priority"`
}

// for mark-as-read and delete (the acting user claims ownership of the mail)
type InputMailOwner struct {
	UserID string `json:"userId" validate:"required"`
}
