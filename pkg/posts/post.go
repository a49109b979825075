package posts

import (
	"strings"
	"time"
)

const DefaultCategory = "general"

type Post struct {
	ID         interface{} `bson:"_id,omitempty"`
	AuthorID   int64       `bson:"authorID"`
	Title      string      `bson:"title"`
	Slug       string      `bson:"slug"`
	Desc       string      `bson:"desc,omitempty"`
	Img        string      `bson:"img,omitempty"`
	Category   string      `bson:"category"`
	Content    string      `bson:"content"`
	IsFeatured bool        `bson:"isFeatured"`
	Views      uint64      `bson:"views"`
	LikedBy    []int64     `bson:"likedBy"`
	Shares     uint64      `bson:"shares"`
	Created    time.Time   `bson:"created"`
}

// LikeCount is the size of the likedBy set.
func (p *Post) LikeCount() int {
	return len(p.LikedBy)
}

func (p *Post) LikedByUser(userID int64) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Slugify derives the base slug from a title: lowercased, spaces
// collapsed to single dashes. Uniqueness is the repository's job.
func Slugify(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}
