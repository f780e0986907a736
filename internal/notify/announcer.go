package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/event"
	"github.com/oakfield/trackside/internal/logger"
)

// messageSender is the slice of the discordgo session the announcer uses.
// Narrowing the dependency keeps tests free of a live gateway connection.
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts settlement results and flagged wagers to a Discord
// channel. It is optional: construct it only when a token and channel are
// configured.
type Announcer struct {
	session   messageSender
	closer    func() error
	channelID string
}

// NewAnnouncer opens a Discord session for posting announcements.
func NewAnnouncer(token, channelID string) (*Announcer, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateSession, err)
	}

	// Announcements only send messages, no gateway intents needed beyond
	// the default.
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToOpenSession, err)
	}

	return &Announcer{
		session:   session,
		closer:    session.Close,
		channelID: channelID,
	}, nil
}

// Subscribe registers the announcer on the bus for settlement events.
func (a *Announcer) Subscribe(bus event.Bus) {
	bus.Subscribe(event.RaceSettled, a.handleRaceSettled)
	bus.Subscribe(event.WagerFlagged, a.handleWagerFlagged)
}

// Close shuts down the underlying Discord session.
func (a *Announcer) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

func (a *Announcer) handleRaceSettled(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[domain.RaceSettledPayloadV1](evt.Payload)
	if err != nil {
		log.Error(LogMsgPayloadDecodeFailed, "error", err, "event_type", evt.Type)
		return err
	}

	return a.send(ctx, formatRaceSettled(payload))
}

func (a *Announcer) handleWagerFlagged(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[domain.WagerFlaggedPayloadV1](evt.Payload)
	if err != nil {
		log.Error(LogMsgPayloadDecodeFailed, "error", err, "event_type", evt.Type)
		return err
	}

	return a.send(ctx, formatWagerFlagged(payload))
}

func (a *Announcer) send(ctx context.Context, content string) error {
	log := logger.FromContext(ctx)

	if _, err := a.session.ChannelMessageSend(a.channelID, content); err != nil {
		log.Error(LogMsgAnnouncementFailed, "error", err, "channel_id", a.channelID)
		return err
	}

	log.Debug(LogMsgAnnouncementSent, "channel_id", a.channelID)
	return nil
}

// formatRaceSettled renders a settlement summary as a channel message.
func formatRaceSettled(p domain.RaceSettledPayloadV1) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏁 Race %d settled: %d wagers resolved, %d winners, %s paid out.",
		p.RaceID, p.WagersSettled, p.WagersWon, formatMoney(p.TotalPaidOut))
	if len(p.WinningHorses) > 0 {
		picks := make([]string, 0, len(p.WinningHorses))
		for _, id := range p.WinningHorses {
			picks = append(picks, fmt.Sprintf("#%d", id))
		}
		fmt.Fprintf(&sb, " Top finishers: %s.", strings.Join(picks, ", "))
	}
	if p.WagersFlagged > 0 {
		fmt.Fprintf(&sb, " %d wagers held for review.", p.WagersFlagged)
	}
	return sb.String()
}

func formatWagerFlagged(p domain.WagerFlaggedPayloadV1) string {
	return fmt.Sprintf("⚠️ Wager %d on race %d held for review: %s", p.WagerID, p.RaceID, p.Reason)
}

// formatMoney renders minor currency units as a decimal amount.
func formatMoney(minorUnits int64) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("%s%d.%02d", sign, minorUnits/100, minorUnits%100)
}
