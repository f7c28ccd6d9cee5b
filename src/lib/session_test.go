package lib

import (
	"context"
	"testing"

	"webcafe/src/types"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const testSessionID = "f2b9a1de-9c41-4a6c-8f0e-3a5d6c7b8e90"

func testDraft() *types.BookingDraft {
	return &types.BookingDraft{
		Name:           "Taro",
		Date:           "2025/03/01",
		Time:           "10:00",
		Email:          "taro@example.com",
		PhoneNumber:    "0312345678",
		NumberOfPeople: 2,
	}
}

const testDraftJSON = `{"name":"Taro","date":"2025/03/01","time":"10:00","email":"taro@example.com","phone_number":"0312345678","number_of_people":2}`

func TestPutBookingDraft(t *testing.T) {
	rd, mock := redismock.NewClientMock()
	NewRedisClient(rd)

	key := "session:" + testSessionID + ":booking_draft"
	mock.ExpectSet(key, testDraftJSON, DraftTTL).SetVal("OK")

	err := PutBookingDraft(context.Background(), testSessionID, testDraft())
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetBookingDraft(t *testing.T) {
	rd, mock := redismock.NewClientMock()
	NewRedisClient(rd)

	key := "session:" + testSessionID + ":booking_draft"

	t.Run("present", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(testDraftJSON)
		draft, err := GetBookingDraft(context.Background(), testSessionID)
		assert.Nil(t, err)
		assert.Equal(t, testDraft(), draft)
	})

	t.Run("absent is not an error", func(t *testing.T) {
		mock.ExpectGet(key).RedisNil()
		draft, err := GetBookingDraft(context.Background(), testSessionID)
		assert.Nil(t, err)
		assert.Nil(t, draft)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		mock.ExpectGet(key).SetVal("{not json")
		draft, err := GetBookingDraft(context.Background(), testSessionID)
		assert.NotNil(t, err)
		assert.Nil(t, draft)
	})

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestClearBookingDraft(t *testing.T) {
	rd, mock := redismock.NewClientMock()
	NewRedisClient(rd)

	key := "session:" + testSessionID + ":booking_draft"
	mock.ExpectDel(key).SetVal(1)

	err := ClearBookingDraft(context.Background(), testSessionID)
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestPostedID(t *testing.T) {
	rd, mock := redismock.NewClientMock()
	NewRedisClient(rd)

	key := "session:" + testSessionID + ":posted_menu"

	mock.ExpectSet(key, uint(42), postedIDTTL).SetVal("OK")
	err := PutPostedID(context.Background(), testSessionID, "menu", 42)
	assert.Nil(t, err)

	mock.ExpectGet(key).SetVal("42")
	id, err := GetPostedID(context.Background(), testSessionID, "menu")
	assert.Nil(t, err)
	assert.Equal(t, uint(42), id)

	assert.Nil(t, mock.ExpectationsWereMet())
}
