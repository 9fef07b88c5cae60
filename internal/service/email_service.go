package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates a new email service. When fromEmail is empty the
// service is disabled and every send becomes a logged no-op.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string) (*EmailService, error) {
	if fromEmail == "" {
		slog.Info("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	slog.Info("Email service enabled", "from", fromEmail, "region", awsRegion)
	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendGrandparentInvite tells a grandparent they have been granted access to
// a kid's private moments
func (s *EmailService) SendGrandparentInvite(ctx context.Context, toEmail, kidName string) error {
	if !s.enabled {
		slog.Debug("Skipping email send (service disabled)", "to", toEmail)
		return nil
	}

	subject := fmt.Sprintf("You can now see %s's private moments", kidName)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body>
	<p>Hello,</p>
	<p>You have been given access to <strong>%s</strong>'s private moments on Little Years.</p>
	<p><a href="%s">Open the timeline</a> and pass your email address as the grandparent parameter to see them.</p>
	<p>This is an automated email from Little Years. Please do not reply.</p>
</body>
</html>
`, kidName, s.appBaseURL)

	textBody := fmt.Sprintf(`Hello,

You have been given access to %s's private moments on Little Years.

Open %s and pass your email address as the grandparent parameter to see them.

This is an automated email from Little Years. Please do not reply.
`, kidName, s.appBaseURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	slog.Info("Email sent", "to", toEmail, "subject", subject)
	return nil
}
