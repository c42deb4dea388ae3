// Package directory serves the fixed club, resource and announcement listings.
package directory

import (
	"strings"

	"campusHub/internal/models"
)

var clubs = []models.Club{
	{ID: "1", Name: "Google Developer Group", Description: "For students passionate about Google tech.", Logo: "https://placehold.co/500x500.png?text=GDG", Category: "Tech"},
	{ID: "2", Name: "Art & Design Club", Description: "Explore your creative side with us.", Logo: "https://placehold.co/500x500.png?text=Art", Category: "Arts"},
	{ID: "3", Name: "Debate Society", Description: "Hone your public speaking and critical thinking.", Logo: "https://placehold.co/500x500.png?text=Debate", Category: "Academic"},
	{ID: "4", Name: "E-Sports Team", Description: "Competitive gaming and community.", Logo: "https://placehold.co/500x500.png?text=E-Sports", Category: "Sports"},
	{ID: "5", Name: "Photography Club", Description: "Capture moments and learn new skills.", Logo: "https://placehold.co/500x500.png?text=Photo", Category: "Arts"},
	{ID: "6", Name: "AI Innovators", Description: "Working on the cutting edge of AI.", Logo: "https://placehold.co/500x500.png?text=AI", Category: "Tech"},
}

// ClubCategories are the categories clubs can be filtered by.
var ClubCategories = []string{"Tech", "Arts", "Academic", "Sports", "Social", "Volunteering"}

var resources = []models.Resource{
	{ID: "1", Title: "Intro to Machine Learning Slides", Type: "Slides", Tags: []string{"AI", "CS101"}, Link: "#", Course: "CS 101", Uploaded: "2026-10-14"},
	{ID: "2", Title: "Calculus II Midterm Review", Type: "PDF", Tags: []string{"Math", "Exam Prep"}, Link: "#", Course: "MATH 203", Uploaded: "2026-10-12"},
	{ID: "3", Title: "Guest Lecture: The Art of Storytelling", Type: "Video", Tags: []string{"Writing", "Guest Speaker"}, Link: "#", Course: "ENG 150", Uploaded: "2026-10-09"},
	{ID: "4", Title: "Organic Chemistry Lab Manual", Type: "PDF", Tags: []string{"Chemistry", "Lab"}, Link: "#", Course: "CHEM 301", Uploaded: "2026-10-06"},
	{ID: "5", Title: "History of Ancient Civilizations: Notes", Type: "Slides", Tags: []string{"History", "Lecture"}, Link: "#", Course: "HIST 210", Uploaded: "2026-10-04"},
}

var announcements = []models.Announcement{
	{ID: "1", Title: "Library Hours Extended for Finals", Content: "The main library will be open 24/7 from Nov 15th to Dec 5th. Good luck with your exams!", Timestamp: "2 days ago", Club: "Campus Administration"},
	{ID: "2", Title: "New Club Registration Open", Content: "Want to start a new club? The registration portal is now open until the end of the month.", Timestamp: "4 days ago", Club: "Student Council"},
}

type Directory struct{}

func New() *Directory {
	return &Directory{}
}

// Clubs lists clubs, optionally only those in category.
func (d *Directory) Clubs(category string) []models.Club {
	out := make([]models.Club, 0, len(clubs))
	for _, c := range clubs {
		if category == "" || strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	return out
}

// Resources lists study resources, optionally only those tagged tag.
func (d *Directory) Resources(tag string) []models.Resource {
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if tag == "" || hasTag(r.Tags, tag) {
			out = append(out, r)
		}
	}
	return out
}

func (d *Directory) Announcements() []models.Announcement {
	out := make([]models.Announcement, len(announcements))
	copy(out, announcements)
	return out
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
