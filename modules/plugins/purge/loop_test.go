package purge

import (
	"strconv"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// snowflakeAt builds a message id whose embedded timestamp is $t
func snowflakeAt(t time.Time) string {
	const discordEpochMs = 1420070400000
	return strconv.FormatInt((t.UnixNano()/int64(time.Millisecond)-discordEpochMs)<<22, 10)
}

func messagesAt(times ...time.Time) []*discordgo.Message {
	messages := make([]*discordgo.Message, 0, len(times))
	for _, at := range times {
		messages = append(messages, &discordgo.Message{ID: snowflakeAt(at)})
	}
	return messages
}

func TestSplitDeletable(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	young := now.Add(-1 * time.Hour)
	old := now.Add(-15 * 24 * time.Hour)

	bulkIDs, oldIDs := splitDeletable(messagesAt(young, young, old), now)

	if len(bulkIDs) != 2 {
		t.Fatalf("expected 2 bulk-deletable ids, got %d", len(bulkIDs))
	}
	if len(oldIDs) != 1 {
		t.Fatalf("expected 1 old id, got %d", len(oldIDs))
	}
	if oldIDs[0] != snowflakeAt(old) {
		t.Fatalf("wrong id classified as old: %s", oldIDs[0])
	}
}

func TestSplitDeletableBoundary(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	justInside := now.Add(-bulkDeleteMaxAge + time.Minute)
	justOutside := now.Add(-bulkDeleteMaxAge - time.Minute)

	bulkIDs, oldIDs := splitDeletable(messagesAt(justInside, justInside, justOutside), now)

	if len(bulkIDs) != 2 || len(oldIDs) != 1 {
		t.Fatalf("boundary split wrong: %d bulk, %d old", len(bulkIDs), len(oldIDs))
	}
}

func TestSplitDeletableLoneBulkDemoted(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	bulkIDs, oldIDs := splitDeletable(messagesAt(now.Add(-time.Hour)), now)

	if len(bulkIDs) != 0 {
		t.Fatalf("a lone bulk candidate must be demoted, got %d bulk ids", len(bulkIDs))
	}
	if len(oldIDs) != 1 {
		t.Fatalf("expected the lone message to be deleted individually, got %d", len(oldIDs))
	}
}

func TestSplitDeletableMalformedID(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	messages := []*discordgo.Message{{ID: "not-a-snowflake"}}

	bulkIDs, oldIDs := splitDeletable(messages, now)

	if len(bulkIDs) != 0 || len(oldIDs) != 1 {
		t.Fatalf("malformed ids must fall back to per-message delete: %d bulk, %d old", len(bulkIDs), len(oldIDs))
	}
}
