package contract

import "github.com/slack-go/slack"

// SlackAPI is the subset of the Slack client used by the services.
// *slack.Client satisfies it directly; tests use the generated mock.
type SlackAPI interface {
	// PostMessage sends a message to a user or channel identifier.
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// GetUserInfo retrieves a user's profile (real name, email, bot flags).
	GetUserInfo(userID string) (*slack.User, error)

	// GetConversations lists channels, cursor-paginated.
	GetConversations(params *slack.GetConversationsParameters) ([]slack.Channel, string, error)

	// GetUsersInConversation lists member IDs of a channel, cursor-paginated.
	GetUsersInConversation(params *slack.GetUsersInConversationParameters) ([]string, string, error)
}
