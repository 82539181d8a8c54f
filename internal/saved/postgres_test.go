package saved

import (
	"context"
	"errors"
	"testing"

	"github.com/nxtwatch/nxtwatch/internal/videoapi"
	"github.com/pashagolub/pgxmock/v3"
)

var savedColumns = []string{
	"video_id", "title", "description", "thumbnail_url", "video_url", "view_count",
	"published_at", "channel_name", "channel_profile_image_url", "subscriber_count",
}

func TestPostgresStore_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT video_id, title, description`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(savedColumns).
			AddRow("v1", "First", "d1", "t1", "u1", "10", "2022-01-01", "C", "p1", "5").
			AddRow("v2", "Second", "d2", "t2", "u2", "1.4K", "Apr 19, 2019", "D", "p2", "1M"))

	store := NewPostgresStore(mock)
	list, err := store.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(list))
	}
	if list[0].ID != "v1" || list[1].ViewCount != "1.4K" || list[1].ChannelName != "D" {
		t.Errorf("unexpected rows: %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_ListEmptyReturnsEmptySlice(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT video_id, title, description`).
		WithArgs("bob").
		WillReturnRows(pgxmock.NewRows(savedColumns))

	list, err := NewPostgresStore(mock).List(context.Background(), "bob")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", list)
	}
}

func TestPostgresStore_ListQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT video_id`).
		WithArgs("alice").
		WillReturnError(errors.New("connection reset"))

	if _, err := NewPostgresStore(mock).List(context.Background(), "alice"); err == nil {
		t.Fatal("expected error")
	}
}

func TestPostgresStore_AddUsesOnConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	video := videoapi.Detail{
		ID: "v1", Title: "T", Description: "D", ThumbnailURL: "t", VideoURL: "u",
		ViewCount: "10", PublishedAt: "2022-01-01", ChannelName: "C",
		ChannelProfileImageURL: "p", SubscriberCount: "5",
	}

	mock.ExpectExec(`INSERT INTO saved_videos .* ON CONFLICT \(owner, video_id\) DO NOTHING`).
		WithArgs("alice", "v1", "T", "D", "t", "u", "10", "2022-01-01", "C", "p", "5").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO saved_videos`).
		WithArgs("alice", "v1", "T", "D", "t", "u", "10", "2022-01-01", "C", "p", "5").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	store := NewPostgresStore(mock)
	for i := 0; i < 2; i++ {
		if err := store.Add(context.Background(), "alice", video); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_AddError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO saved_videos`).
		WillReturnError(errors.New("disk full"))

	if err := NewPostgresStore(mock).Add(context.Background(), "alice", videoapi.Detail{ID: "v1"}); err == nil {
		t.Fatal("expected error")
	}
}
