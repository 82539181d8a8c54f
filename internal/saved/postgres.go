package saved

import (
	"context"
	"fmt"

	"github.com/nxtwatch/nxtwatch/internal/database"
	"github.com/nxtwatch/nxtwatch/internal/videoapi"
)

type PostgresStore struct {
	db database.DBTX
}

func NewPostgresStore(db database.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, owner string) ([]videoapi.Detail, error) {
	rows, err := s.db.Query(ctx,
		`SELECT video_id, title, description, thumbnail_url, video_url, view_count,
		        published_at, channel_name, channel_profile_image_url, subscriber_count
		 FROM saved_videos
		 WHERE owner = $1
		 ORDER BY saved_at, video_id`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("query saved videos: %w", err)
	}
	defer rows.Close()

	videos := []videoapi.Detail{}
	for rows.Next() {
		var v videoapi.Detail
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.ThumbnailURL, &v.VideoURL, &v.ViewCount,
			&v.PublishedAt, &v.ChannelName, &v.ChannelProfileImageURL, &v.SubscriberCount); err != nil {
			return nil, fmt.Errorf("scan saved video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved videos: %w", err)
	}
	return videos, nil
}

func (s *PostgresStore) Add(ctx context.Context, owner string, v videoapi.Detail) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO saved_videos (owner, video_id, title, description, thumbnail_url, video_url, view_count,
		                           published_at, channel_name, channel_profile_image_url, subscriber_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (owner, video_id) DO NOTHING`,
		owner, v.ID, v.Title, v.Description, v.ThumbnailURL, v.VideoURL, v.ViewCount,
		v.PublishedAt, v.ChannelName, v.ChannelProfileImageURL, v.SubscriberCount,
	)
	if err != nil {
		return fmt.Errorf("insert saved video: %w", err)
	}
	return nil
}
