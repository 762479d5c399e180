package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/slack-go/slack"

	"github.com/romanibanez/booking-reminder-bot/internal/domain/contract"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

// conversationsPageSize is the maximum the Slack API allows per page.
const conversationsPageSize = 1000

type exportService struct {
	slackAPI contract.SlackAPI
	dm       contract.DataManager
}

func newExport(slackAPI contract.SlackAPI, dm contract.DataManager) *exportService {
	return &exportService{
		slackAPI: slackAPI,
		dm:       dm,
	}
}

// Export collects the unique human members across every channel whose name
// starts with prefix, keeping only those with an email in their profile.
// Results are sorted by name so repeated exports diff cleanly.
func (s *exportService) Export(ctx context.Context, prefix string) ([]*entity.Student, error) {
	channels, err := s.channelsWithPrefix(prefix)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		log.Printf("No channels found with prefix '%s'.", prefix)
		return nil, nil
	}

	memberIDs := make(map[string]struct{})
	for _, channel := range channels {
		members, err := s.channelMembers(channel.ID)
		if err != nil {
			log.Printf("ERROR getting members for channel %s: %v", channel.Name, err)
			continue
		}
		log.Printf("Channel '%s' has %d members", channel.Name, len(members))
		for _, id := range members {
			memberIDs[id] = struct{}{}
		}
	}
	log.Printf("Found %d unique members across all %s* channels", len(memberIDs), prefix)

	var students []*entity.Student
	for memberID := range memberIDs {
		student, err := s.memberInfo(memberID)
		if err != nil {
			log.Printf("ERROR fetching user info for %s: %v", memberID, err)
			continue
		}
		if student == nil || student.Email == "" {
			continue
		}
		students = append(students, student)
	}

	sort.Slice(students, func(i, j int) bool {
		return students[i].Name < students[j].Name
	})

	log.Printf("Collected information for %d valid users", len(students))
	return students, nil
}

// Persist replaces the stored roster with the exported one in a single
// transaction, so a half-failed export never leaves a mixed roster behind.
func (s *exportService) Persist(ctx context.Context, students []*entity.Student) error {
	return s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Roster().DeleteAll(); err != nil {
			return err
		}
		for _, student := range students {
			if err := dm.Roster().Upsert(student); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *exportService) channelsWithPrefix(prefix string) ([]slack.Channel, error) {
	log.Printf("Fetching channels with prefix '%s'...", prefix)
	prefix = strings.ToLower(prefix)

	var matched []slack.Channel
	cursor := ""
	for {
		channels, nextCursor, err := s.slackAPI.GetConversations(&slack.GetConversationsParameters{
			ExcludeArchived: true,
			Limit:           conversationsPageSize,
			Cursor:          cursor,
			Types:           []string{"public_channel"},
		})
		if err != nil {
			return nil, err
		}

		for _, channel := range channels {
			if strings.HasPrefix(channel.Name, prefix) {
				log.Printf("Found channel: %s", channel.Name)
				matched = append(matched, channel)
			}
		}

		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	log.Printf("Found %d channels with prefix '%s'", len(matched), prefix)
	return matched, nil
}

func (s *exportService) channelMembers(channelID string) ([]string, error) {
	var members []string
	cursor := ""
	for {
		page, nextCursor, err := s.slackAPI.GetUsersInConversation(&slack.GetUsersInConversationParameters{
			ChannelID: channelID,
			Limit:     conversationsPageSize,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, err
		}

		members = append(members, page...)
		if nextCursor == "" {
			return members, nil
		}
		cursor = nextCursor
	}
}

// memberInfo returns nil for bots, app users, deleted accounts and the
// built-in slackbot.
func (s *exportService) memberInfo(userID string) (*entity.Student, error) {
	user, err := s.slackAPI.GetUserInfo(userID)
	if err != nil {
		return nil, err
	}

	if user.IsBot || user.Deleted || user.IsAppUser || user.ID == "USLACKBOT" {
		return nil, nil
	}

	return &entity.Student{
		Name:    user.Profile.RealName,
		Email:   strings.ToLower(strings.TrimSpace(user.Profile.Email)),
		SlackID: user.ID,
	}, nil
}
