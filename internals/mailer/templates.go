package mailer

import (
	"bytes"
	"html/template"
	"log"

	"github.com/Srinivaspandrala/server-hrm/internals/configs"
)

// Transactional mail bodies. The layout mirrors what the platform has
// always sent: a card with the HRM logo, a greeting and a call-to-action.

const layoutHTML = `
<div style="font-family: Arial, sans-serif; padding: 20px; background: #f9f9f9; border-radius: 8px; max-width: 600px; margin: auto; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
    <div style="text-align: center; margin-bottom: 20px;">
        <img src="https://static.vecteezy.com/system/resources/previews/007/263/716/non_2x/hrm-letter-logo-design-on-white-background-hrm-creative-initials-letter-logo-concept-hrm-letter-design-vector.jpg"
            alt="HRM Platform Logo"
            style="max-width: 100px; height: auto; border-radius: 50%;" />
    </div>
    <p style="font-size: 18px; color: #333; text-align: center; font-weight: bold; margin: 0;">{{.Title}}</p>
    <p style="font-size: 16px; color: #555; margin: 10px 0;">Dear <strong>{{.Name}}</strong>,</p>
    <p style="font-size: 14px; line-height: 1.6; color: #666; text-align: justify;">{{.Intro}}</p>
    {{if .Credentials}}
    <div style="background: #f1f1f1; padding: 15px; border-radius: 5px; margin: 20px 0; font-size: 14px;">
        <p style="margin: 0;"><strong>Username:</strong> {{.Credentials.Username}}</p>
        <p style="margin: 0;"><strong>Password:</strong> {{.Credentials.Password}}</p>
    </div>
    <p style="font-size: 14px; color: #666; text-align: justify; margin-bottom: 20px;">
        Please log in and change your password as soon as possible for enhanced security.
    </p>
    {{end}}
    {{if .Action}}
    <div style="text-align: center; margin-top: 20px;">
        <a href="{{.Action.URL}}"
           style="display: inline-block; padding: 10px 20px; background: #4CAF50; color: #fff; text-decoration: none; font-size: 16px; border-radius: 5px; font-weight: bold;">{{.Action.Label}}</a>
    </div>
    {{end}}
    <p style="font-size: 14px; color: #999; text-align: center; margin-top: 20px;">
        Best regards,<br>
        <strong>The HRM Platform Team</strong>
    </p>
</div>`

var mailLayout = template.Must(template.New("mail").Parse(layoutHTML))

type mailCredentials struct {
	Username string
	Password string
}

type mailAction struct {
	URL   string
	Label string
}

type mailData struct {
	Title       string
	Name        string
	Intro       string
	Credentials *mailCredentials
	Action      *mailAction
}

func render(data mailData) string {
	var buf bytes.Buffer
	if err := mailLayout.Execute(&buf, data); err != nil {
		// only reachable with a broken template constant
		log.Printf("[ERROR] mail template render: %v", err)
		return ""
	}
	return buf.String()
}

// WelcomeEmail: self-signup confirmation carrying the generated password.
func WelcomeEmail(fullName, email, password string) (subject, body string) {
	return "Welcome to HRM platform", render(mailData{
		Title:       "Welcome to the HRM Platform!",
		Name:        fullName,
		Intro:       "We are thrilled to have you on board. Below are your login credentials:",
		Credentials: &mailCredentials{Username: email, Password: password},
		Action:      &mailAction{URL: configs.AppBaseURL + "/", Label: "Login to HRM Platform"},
	})
}

// LoginAlertEmail: sent alongside every successful login.
func LoginAlertEmail(fullName string) (subject, body string) {
	return "Login Successful to HRM Platform", render(mailData{
		Title: "Login Successful to HRM Platform",
		Name:  fullName,
		Intro: "We are pleased to inform you that your login to the HRM Platform was successful. " +
			"If this login was not performed by you, please reset your password immediately or contact support.",
		Action: &mailAction{URL: configs.AppBaseURL + "/forgotpassword", Label: "Reset Password"},
	})
}

// PasswordResetEmail: carries the newly generated password.
func PasswordResetEmail(password string) (subject, body string) {
	return "Password Reset for HRM Platform", render(mailData{
		Title:       "Password Reset Successful",
		Name:        "Employee",
		Intro:       "Your password for the HRM Platform has been successfully reset. Please use the temporary password below to log in. If you did not request this reset, contact support@hrmplatform.com.",
		Credentials: &mailCredentials{Username: "(your work email)", Password: password},
		Action:      &mailAction{URL: configs.AppBaseURL + "/login", Label: "Log In"},
	})
}

// OnboardingWelcomeEmail: first mail of the onboarding sequence.
func OnboardingWelcomeEmail(fullName, position string) (subject, body string) {
	return "Welcome to Gollamudi Technology and Software", render(mailData{
		Title: "Welcome to the HRM Platform!",
		Name:  fullName,
		Intro: "We are thrilled to have you join Gollamudi Technology and Software as our new " + position +
			"! Your skills and experience will be a great addition to our team, and we are eager to collaborate with you on exciting projects.",
	})
}

// CredentialsEmail: onboarding sequence, sent 5 minutes after registration.
func CredentialsEmail(fullName, email, password string) (subject, body string) {
	return "Your HRM Platform Login Credentials", render(mailData{
		Title:       "Your HRM Platform Login Credentials",
		Name:        fullName,
		Intro:       "Below are your login credentials for the HRM Platform:",
		Credentials: &mailCredentials{Username: email, Password: password},
		Action:      &mailAction{URL: configs.AppBaseURL + "/", Label: "Login to HRM Platform"},
	})
}

// GettingStartedEmail: onboarding sequence, sent a day after registration.
func GettingStartedEmail(fullName string) (subject, body string) {
	return "Getting Started with HRM Platform", render(mailData{
		Title: "Getting Started with HRM Platform",
		Name:  fullName,
		Intro: "We hope you are settling in well. Useful resources to get started: the HRM Platform user guide, " +
			"company policies, and support contact information.",
	})
}
