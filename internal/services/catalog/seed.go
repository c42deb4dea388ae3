package catalog

import "campusHub/internal/models"

var sampleEvents = []models.Event{
	{
		ID:          "1",
		Title:       "GDG Tech Talk: The Future of AI",
		Description: "Join us for an exciting talk on the future of Artificial Intelligence with industry experts.",
		Date:        "2026-10-26",
		Time:        "3:00 PM",
		Location:    "Auditorium A",
		Image:       DefaultImage,
		Tags:        []string{"Tech", "AI"},
		Organizer:   "Google Developer Group",
		Capacity:    200,
	},
	{
		ID:          "2",
		Title:       "Campus Movie Night: Sci-Fi Special",
		Description: "Grab your blankets and enjoy a classic sci-fi movie under the stars.",
		Date:        "2026-10-28",
		Time:        "7:00 PM",
		Location:    "Central Lawn",
		Image:       DefaultImage,
		Tags:        []string{"Social", "Movie"},
		Organizer:   "Student Life Committee",
		Capacity:    500,
	},
	{
		ID:          "3",
		Title:       "Career Fair 2026",
		Description: "Connect with top companies and explore internship and job opportunities.",
		Date:        "2026-11-02",
		Time:        "10:00 AM - 4:00 PM",
		Location:    "Grand Hall",
		Image:       DefaultImage,
		Tags:        []string{"Career", "Networking"},
		Organizer:   "Career Services",
	},
	{
		ID:          "4",
		Title:       "Art Club Exhibition",
		Description: "Student paintings, prints and installations from this semester.",
		Date:        "2026-11-05",
		Time:        "All Day",
		Location:    "Fine Arts Gallery",
		Image:       DefaultImage,
		Tags:        []string{"Arts", "Exhibition"},
		Organizer:   "Art & Design Club",
	},
	{
		ID:          "5",
		Title:       "Volunteering Day",
		Description: "Spend the morning helping out at local community projects.",
		Date:        "2026-11-10",
		Time:        "9:00 AM",
		Location:    "Community Center",
		Image:       DefaultImage,
		Tags:        []string{"Volunteering", "Community"},
		Organizer:   "Student Council",
	},
	{
		ID:          "6",
		Title:       "Debate Championship",
		Description: "Teams from every faculty face off in the annual championship final.",
		Date:        "2026-11-12",
		Time:        "6:00 PM",
		Location:    "Lecture Hall C",
		Image:       DefaultImage,
		Tags:        []string{"Academic", "Debate"},
		Organizer:   "Debate Society",
	},
}

// SampleEvents returns a copy of the events written by SeedIfEmpty.
func SampleEvents() []models.Event {
	out := make([]models.Event, len(sampleEvents))
	copy(out, sampleEvents)
	return out
}
