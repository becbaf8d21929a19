package awsclient

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailClient is the subset of the SES client used to send mail.
type EmailClient interface {
	SendEmail(ctx context.Context, input *sesv2.SendEmailInput, opts ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

var approvalBody = template.Must(template.New("approval").Parse(`Hello {{.Name}},

Your account has been approved.

Plan: {{.Plan}}
Workspace: {{with .WorkspaceID}}{{.}}{{end}}
Dashboards: {{len .AssignedDashboards}}

Your account is inactive until payment has been received.
`))

// ApprovalMailer emails a client once their account has been approved.
type ApprovalMailer struct {
	Client  EmailClient
	From    string
	ReplyTo string
	Subject string
}

func NewApprovalMailer(client EmailClient, from, replyTo string) *ApprovalMailer {
	return &ApprovalMailer{
		Client:  client,
		From:    from,
		ReplyTo: replyTo,
		Subject: "Your account has been approved",
	}
}

func (m *ApprovalMailer) SendApprovalEmail(ctx context.Context, client models.Client) error {
	if client.Email == "" {
		return fmt.Errorf("client %s has no email address", client.ID)
	}

	var body bytes.Buffer
	if err := approvalBody.Execute(&body, client); err != nil {
		return fmt.Errorf("error rendering approval email: %w", err)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.From),
		Destination: &types.Destination{
			ToAddresses: []string{client.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(m.Subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body.String())},
				},
			},
		},
	}
	if m.ReplyTo != "" {
		input.ReplyToAddresses = []string{m.ReplyTo}
	}

	if _, err := m.Client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("error sending approval email: %w", err)
	}
	return nil
}
