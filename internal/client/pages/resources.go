package pages

type Resource struct {
	Name        string
	Contact     string
	Description string
}

type ResourceSection struct {
	Title     string
	Resources []Resource
}

// SafetyNote closes the emergency resources page.
const SafetyNote = "If you're using this app on a shared device, clear your terminal history after viewing this page. " +
	"Your safety is the most important thing."

// EmergencyResources returns the static help directory.
func EmergencyResources() []ResourceSection {
	return []ResourceSection{
		{
			Title: "Immediate Danger",
			Resources: []Resource{
				{"National Domestic Violence Hotline", "1-800-799-7233", "24/7 confidential support, available in 200+ languages"},
				{"Emergency Services", "911", "Call immediately if you're in immediate physical danger"},
			},
		},
		{
			Title: "Support & Counseling",
			Resources: []Resource{
				{"National Sexual Assault Hotline", "1-800-656-4673", "24/7 confidential support for survivors"},
				{"Crisis Text Line", "Text HOME to 741741", "24/7 crisis support via text message"},
				{"National Suicide Prevention Lifeline", "988", "24/7 confidential support for anyone in distress"},
			},
		},
		{
			Title: "Local Resources",
			Resources: []Resource{
				{"Local Domestic Violence Shelter", "Contact your local 211 or 311", "Find shelters and support services in your area"},
				{"Legal Aid", "1-888-534-5243", "Free legal assistance for domestic violence cases"},
			},
		},
		{
			Title: "Online Resources",
			Resources: []Resource{
				{"National Domestic Violence Website", "thehotline.org", "Online chat, safety planning, and resources"},
				{"RAINN (Rape, Abuse & Incest National Network)", "rainn.org", "Online hotline and resources for survivors"},
			},
		},
	}
}
