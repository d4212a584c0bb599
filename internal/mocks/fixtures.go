package mocks

import (
	"github.com/news-forum-api/internal/models"
)

// SeedTestData fills the store with a small dataset: topics mitch, cats and
// paper (paper has no articles), users butter_bridge and icellusedkars,
// article 1 (mitch, 100 votes, two comments), article 2 (mitch, no comments)
// and article 3 (cats, one comment).
func SeedTestData(s *MockStore) {
	s.AddTopic("mitch", "The man, the Mitch, the legend")
	s.AddTopic("cats", "Not dogs")
	s.AddTopic("paper", "what books are made of")

	s.AddUser("butter_bridge", "jonny")
	s.AddUser("icellusedkars", "sam")

	s.AddArticle(models.Article{
		ArticleID:     1,
		Author:        "butter_bridge",
		Title:         "Living in the shadow of a great man",
		Body:          "I find this existence challenging",
		Topic:         "mitch",
		Votes:         100,
		ArticleImgURL: "https://images.example.com/1.jpg",
	})
	s.AddArticle(models.Article{
		ArticleID:     2,
		Author:        "icellusedkars",
		Title:         "Sony Vaio; or, The Laptop",
		Body:          "Call me Mitchell.",
		Topic:         "mitch",
		ArticleImgURL: "https://images.example.com/2.jpg",
	})
	s.AddArticle(models.Article{
		ArticleID:     3,
		Author:        "icellusedkars",
		Title:         "UNCOVERED: catspiracy to bring down democracy",
		Body:          "Bastet walks amongst us, and the cats are taking arms!",
		Topic:         "cats",
		ArticleImgURL: "https://images.example.com/3.jpg",
	})

	s.AddComment(1, "butter_bridge", "Oh, I've got compassion running out of my nose, pal!")
	s.AddComment(1, "icellusedkars", "The beautiful thing about treasure is that it exists.")
	s.AddComment(3, "butter_bridge", "Replacing the quiet elegance of the dark suit and tie.")
}
