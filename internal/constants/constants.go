package constants

const (
	DefaultTimerMinutes = 60
	DashboardHistory    = 20
)

const (
	DefaultExplanation = "Explanation not available"
	MissingExplanation = "No explanation available"
	DefaultDifficulty  = "Medium"
	AnswerFieldPrefix  = "answer_"
	ResultsQueue       = "quiz.results"
	SessionContextKey  = "session_id"
	HealthServiceName  = "practice"
)

var AvailableYears = []string{"2024", "2023", "2022", "2021", "2020", "2019", "2018", "2017", "2016"}

var AvailableSubjects = []string{"Botany", "Zoology", "Physics", "Chemistry"}

// SubjectFiles maps subject -> year -> CSV file name.
var SubjectFiles = map[string]map[string]string{
	"Botany": {
		"2024": "Botny_Previous_Year 2024.csv",
		"2023": "Botany_2023_Neet.csv",
		"2022": "Botany_2022_Neet.csv",
		"2021": "Botany_2021_Neet.csv",
		"2020": "Botany_2020_Neet.csv",
		"2019": "Botany_2019_Neet.csv",
	},
	"Zoology": {
		"2024": "NEET2024_Zoology_previous_Questions.csv",
	},
	"Physics": {
		"2024": "Physics2024PreviousYearQ&A.csv",
		"2023": "Physics_Neet_2023.csv",
		"2022": "Physics_2022_Neet_Unique_40_Questions.csv",
		"2021": "Physics_2021_Neet_Unique_40_Questions.csv",
		"2020": "Physics_2020_Neet_Unique_40_Questions.csv",
		"2019": "Physics_2019_Neet_Unique_40_Questions.csv",
		"2018": "Physics_2018_Neet_Unique_40_Questions.csv",
		"2017": "Physics_2017_Neet_Unique_40_Questions.csv",
		"2016": "Physics_2016_Neet_Unique_40_Questions.csv",
	},
	"Chemistry": {
		"2024": "Chemistry_Previous_Year 2024.csv",
		"2023": "Chemistry_2023_Neet_Unique_40_Questions.csv",
		"2021": "Chemistry_2021_Neet_Unique_40_Questions (1).csv",
		"2020": "Chemistry_2020_Neet_Unique_40_Questions (1).csv",
		"2019": "Chemistry_2019_Neet_Unique_40_Questions.csv",
		"2017": "Chemistry_2017_Neet_Unique_40_Questions.csv",
		"2016": "Chemistry_2016_Neet_Unique_40_Questions.csv",
	},
}
