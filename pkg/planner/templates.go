package planner

// Theme is the two-colour gradient of a day, as hex colours
type Theme struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	To   string `json:"to" yaml:"to" mapstructure:"to"`
}

// DayTemplate is the static data a day schedule is generated from
type DayTemplate struct {
	Title  string
	Theme  Theme
	Blocks []TimeBlock
}

// BlocksPerDay is the number of time blocks in every day template
const BlocksPerDay = 9

var weekTemplates = map[ViewID]DayTemplate{
	Monday: {
		Title: "Fresh Start",
		Theme: Theme{From: "#667eea", To: "#764ba2"},
		Blocks: []TimeBlock{
			{"6:30 AM", "Wake Up & Hydrate", "Glass of water, open the blinds, no phone for 20 minutes"},
			{"7:00 AM", "Morning Run", "Easy 5k to set the pace for the week"},
			{"8:00 AM", "Breakfast", "Oats, fruit and coffee"},
			{"9:00 AM", "Weekly Planning", "Review goals and block out the week"},
			{"10:30 AM", "Deep Work", "Most important task first"},
			{"12:30 PM", "Lunch", "Away from the desk"},
			{"2:00 PM", "Meetings", "Team sync and one-on-ones"},
			{"5:00 PM", "Inbox Zero", "Clear messages and update the task list"},
			{"8:00 PM", "Wind Down", "Read for 30 minutes, lights out by 10:30"},
		},
	},
	Tuesday: {
		Title: "Deep Focus",
		Theme: Theme{From: "#f093fb", To: "#f5576c"},
		Blocks: []TimeBlock{
			{"6:30 AM", "Wake Up & Stretch", "Ten minutes of mobility work"},
			{"7:00 AM", "Strength Training", "Upper body session"},
			{"8:00 AM", "Breakfast", "Eggs, toast and tea"},
			{"9:00 AM", "Focus Block I", "Notifications off, single task"},
			{"11:00 AM", "Short Break", "Walk around the block"},
			{"11:30 AM", "Focus Block II", "Continue the morning task"},
			{"1:00 PM", "Lunch", "Something green"},
			{"3:00 PM", "Admin", "Email, scheduling and paperwork"},
			{"7:30 PM", "Hobby Time", "Guitar practice"},
		},
	},
	Wednesday: {
		Title: "Learn & Grow",
		Theme: Theme{From: "#4facfe", To: "#00f2fe"},
		Blocks: []TimeBlock{
			{"6:30 AM", "Wake Up & Journal", "Three things to look forward to"},
			{"7:00 AM", "Yoga", "30 minute flow"},
			{"8:00 AM", "Breakfast", "Smoothie and granola"},
			{"9:00 AM", "Course Work", "One module of the current online course"},
			{"11:00 AM", "Project Work", "Apply what was learned"},
			{"12:30 PM", "Lunch", "With a colleague"},
			{"2:00 PM", "Reading", "Technical book chapter with notes"},
			{"4:00 PM", "Mentoring", "Pair session or code review"},
			{"7:00 PM", "Language Practice", "20 minutes of vocabulary"},
		},
	},
	Thursday: {
		Title: "Collaborate",
		Theme: Theme{From: "#43e97b", To: "#38f9d7"},
		Blocks: []TimeBlock{
			{"6:30 AM", "Wake Up & Hydrate", "Water and a short walk"},
			{"7:00 AM", "Interval Run", "6 x 400m repeats"},
			{"8:00 AM", "Breakfast", "Yoghurt and berries"},
			{"9:00 AM", "Stand-up", "Share progress and blockers"},
			{"10:00 AM", "Workshop", "Cross-team design session"},
			{"12:30 PM", "Team Lunch", "Catch up outside of work topics"},
			{"2:00 PM", "Pairing", "Work through a hard problem together"},
			{"4:30 PM", "Follow-ups", "Send notes and action items"},
			{"7:30 PM", "Social", "Dinner with friends"},
		},
	},
	Friday: {
		Title: "Review & Wrap-up",
		Theme: Theme{From: "#fa709a", To: "#fee140"},
		Blocks: []TimeBlock{
			{"7:00 AM", "Wake Up Slowly", "No alarm if the week went well"},
			{"7:30 AM", "Swim", "Easy laps"},
			{"8:30 AM", "Breakfast", "Pancakes"},
			{"9:30 AM", "Weekly Review", "What worked, what did not"},
			{"11:00 AM", "Finish Open Tasks", "Close the loops from the week"},
			{"12:30 PM", "Lunch", "Try somewhere new"},
			{"2:00 PM", "Demo", "Show the week's work to the team"},
			{"4:00 PM", "Plan Next Week", "Draft priorities for Monday"},
			{"7:00 PM", "Movie Night", "Pick something light"},
		},
	},
	Saturday: {
		Title: "Adventure",
		Theme: Theme{From: "#a8edea", To: "#fed6e3"},
		Blocks: []TimeBlock{
			{"8:00 AM", "Sleep In", "Let the body recover"},
			{"9:00 AM", "Brunch", "Slow breakfast with the family"},
			{"10:30 AM", "Hike", "Trail loop outside the city"},
			{"1:00 PM", "Picnic", "Pack sandwiches and fruit"},
			{"3:00 PM", "Explore", "Museum, market or a new neighbourhood"},
			{"5:00 PM", "Errands", "Groceries for the week"},
			{"6:30 PM", "Cook", "Try a new recipe"},
			{"8:00 PM", "Games", "Board games with friends"},
			{"10:30 PM", "Bed", "Keep the rhythm for Sunday"},
		},
	},
	Sunday: {
		Title: "Rest & Reset",
		Theme: Theme{From: "#ffecd2", To: "#fcb69f"},
		Blocks: []TimeBlock{
			{"8:00 AM", "Slow Morning", "Coffee and a newspaper"},
			{"9:30 AM", "Long Walk", "Easy pace, no headphones"},
			{"11:00 AM", "Brunch", "Eggs and fresh bread"},
			{"12:30 PM", "Meal Prep", "Cook lunches for the first half of the week"},
			{"2:30 PM", "Tidy Up", "Reset the home for the week"},
			{"4:00 PM", "Family Time", "Call parents"},
			{"6:00 PM", "Weekly Preview", "Look at Monday's calendar"},
			{"7:00 PM", "Dinner", "Something comforting"},
			{"9:00 PM", "Early Night", "Screens off at 9:30"},
		},
	},
}
