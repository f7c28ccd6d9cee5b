package lib

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"webcafe/src/types"

	"github.com/redis/go-redis/v9"
)

// Session-scoped state lives in redis under session:<id>:<field>. Only the
// owning session's requests ever read or write these keys.
const (
	sessionDraftField = "booking_draft"

	// An abandoned draft self-expires instead of lingering for the
	// session lifetime.
	DraftTTL = 30 * time.Minute

	postedIDTTL = 1 * time.Hour
)

func sessionKey(sessionID, field string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, field)
}

// PutBookingDraft stores the pending draft for a session, replacing any
// previous one. Last submission wins.
func PutBookingDraft(ctx context.Context, sessionID string, draft *types.BookingDraft) error {
	body, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	rd := GetRedisClient()
	return rd.Set(ctx, sessionKey(sessionID, sessionDraftField), string(body), DraftTTL).Err()
}

// GetBookingDraft returns the session's pending draft, or nil when none
// exists. Absence is not an error: callers redirect back to intake.
func GetBookingDraft(ctx context.Context, sessionID string) (*types.BookingDraft, error) {
	rd := GetRedisClient()
	val, err := rd.Get(ctx, sessionKey(sessionID, sessionDraftField)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var draft types.BookingDraft
	if err := json.Unmarshal([]byte(val), &draft); err != nil {
		log.Printf("[session] Error decoding draft for session %s: %s\n", sessionID, err.Error())
		return nil, err
	}
	return &draft, nil
}

func ClearBookingDraft(ctx context.Context, sessionID string) error {
	rd := GetRedisClient()
	return rd.Del(ctx, sessionKey(sessionID, sessionDraftField)).Err()
}

// PutPostedID remembers the id of a freshly created record so the posted
// page can show it after the redirect.
func PutPostedID(ctx context.Context, sessionID, kind string, id uint) error {
	rd := GetRedisClient()
	return rd.Set(ctx, sessionKey(sessionID, "posted_"+kind), id, postedIDTTL).Err()
}

func GetPostedID(ctx context.Context, sessionID, kind string) (uint, error) {
	rd := GetRedisClient()
	val, err := rd.Get(ctx, sessionKey(sessionID, "posted_"+kind)).Result()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
