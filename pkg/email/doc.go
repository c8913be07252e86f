// Package email delivers test sends of rendered templates.
//
// Two EmailSender implementations exist. The Postmark client sends real mail
// through github.com/mrz1836/postmark; DevSender writes each email to disk as
// an .html body plus a .json envelope so a developer can open the result in a
// browser. NewSender chooses between them from Config:
//
//	cfg, _ := config.Load[email.Config]()
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "qa@example.com",
//		Subject:  "Preview: Welcome",
//		BodyHTML: html,
//		Tag:      "template-test",
//	})
//
// Both senders validate params first; validation failures wrap
// ErrInvalidParams and carry validator.ValidationErrors for the offending
// fields. Delivery failures wrap ErrFailedToSendEmail.
package email
