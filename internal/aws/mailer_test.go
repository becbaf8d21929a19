package awsclient

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAWSEmailClient struct {
	mock.Mock
}

func (m *MockAWSEmailClient) SendEmail(ctx context.Context, input *sesv2.SendEmailInput, opts ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, input, opts)
	return args.Get(0).(*sesv2.SendEmailOutput), args.Error(1)
}

func TestApprovalMailer_SendApprovalEmail(t *testing.T) {
	emailClient := new(MockAWSEmailClient)
	emailClient.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).
		Return(&sesv2.SendEmailOutput{}, nil)

	mailer := NewApprovalMailer(emailClient, "service@example.com", "helpdesk@example.com")

	workspaceID := "ws-123"
	client := models.Client{
		ID:                 uuid.New(),
		Name:               "Nine Ltd",
		Email:              "sam@nine.example",
		Plan:               "professional",
		WorkspaceID:        &workspaceID,
		AssignedDashboards: []string{"sales-overview", "support-metrics"},
	}

	require.NoError(t, mailer.SendApprovalEmail(context.Background(), client))

	emailClient.AssertCalled(t, "SendEmail", mock.Anything, mock.MatchedBy(func(input *sesv2.SendEmailInput) bool {
		body := *input.Content.Simple.Body.Text.Data
		return *input.FromEmailAddress == "service@example.com" &&
			input.Destination.ToAddresses[0] == "sam@nine.example" &&
			input.ReplyToAddresses[0] == "helpdesk@example.com" &&
			strings.Contains(body, "Workspace: ws-123") &&
			strings.Contains(body, "Dashboards: 2")
	}), mock.Anything)
}

func TestApprovalMailer_Errors(t *testing.T) {
	emailClient := new(MockAWSEmailClient)
	emailClient.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).
		Return(&sesv2.SendEmailOutput{}, errors.New("throttled"))

	mailer := NewApprovalMailer(emailClient, "service@example.com", "")

	err := mailer.SendApprovalEmail(context.Background(), models.Client{ID: uuid.New()})
	assert.Error(t, err)
	emailClient.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything)

	err = mailer.SendApprovalEmail(context.Background(), models.Client{ID: uuid.New(), Email: "a@b.example"})
	assert.ErrorContains(t, err, "throttled")
}
