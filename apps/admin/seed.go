package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/lesson"
	"github.com/nabha-edu/shiksha/core/literacy"
	"github.com/nabha-edu/shiksha/core/user"
)

const (
	seedSchool = "Government School Nabha"
	seedClass  = "Class 8A"
	seedGrade  = "Class 8"
)

// seed resets the demo school data: four accounts, three lessons and the
// digital literacy catalog.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	if err := cli.dropSeedData(ctx); err != nil {
		return err
	}

	teacherID, err := cli.seedUsers(ctx)
	if err != nil {
		return errors.Wrap(err, "seeding users")
	}
	if err := cli.seedLessons(ctx, teacherID); err != nil {
		return errors.Wrap(err, "seeding lessons")
	}
	if err := cli.seedModules(ctx); err != nil {
		return errors.Wrap(err, "seeding digital literacy modules")
	}

	fmt.Println("Seeding complete. Test credentials:")
	fmt.Println("  Admin:   admin@school.com / admin123")
	fmt.Println("  Teacher: teacher@school.com / teacher123")
	fmt.Println("  Student: student1@school.com / student123")
	fmt.Println("  Student: student2@school.com / student123")
	return nil
}

// seedUsers creates the demo accounts; returns the teacher's ID so the
// lessons can reference their author.
func (cli *commandLine) seedUsers(ctx context.Context) (string, error) {
	now := time.Now().UTC()
	users := []struct {
		usr user.User
		pwd string
	}{
		{
			usr: user.User{
				Name:               "Admin User",
				Email:              "admin@school.com",
				Role:               user.RoleAdmin,
				School:             seedSchool,
				LanguagePreference: core.LangPunjabi,
			},
			pwd: "admin123",
		},
		{
			usr: user.User{
				Name:               "Gurpreet Kaur",
				Email:              "teacher@school.com",
				Role:               user.RoleTeacher,
				School:             seedSchool,
				ClassName:          seedClass,
				LanguagePreference: core.LangPunjabi,
			},
			pwd: "teacher123",
		},
		{
			usr: user.User{
				Name:               "Simran Singh",
				Email:              "student1@school.com",
				Role:               user.RoleStudent,
				School:             seedSchool,
				ClassName:          seedClass,
				LanguagePreference: core.LangPunjabi,
			},
			pwd: "student123",
		},
		{
			usr: user.User{
				Name:               "Rajesh Kumar",
				Email:              "student2@school.com",
				Role:               user.RoleStudent,
				School:             seedSchool,
				ClassName:          seedClass,
				LanguagePreference: core.LangHindi,
			},
			pwd: "student123",
		},
	}

	var teacherID string
	for _, u := range users {
		u.usr.ID = uuid.New().String()
		u.usr.CreatedAt = now
		if err := u.usr.SetPassword(u.pwd); err != nil {
			return "", err
		}
		created, err := cli.usrRepo.CreateUser(ctx, u.usr)
		if err != nil {
			return "", err
		}
		if created.IsTeacher() {
			teacherID = created.ID
		}
	}
	return teacherID, nil
}

func (cli *commandLine) seedLessons(ctx context.Context, teacherID string) error {
	now := time.Now().UTC()
	lessons := []lesson.Lesson{
		{
			Title: core.TranslatedText{
				core.LangPunjabi: "ਵਿਗਿਆਨ: ਪਾਣੀ ਦਾ ਚੱਕਰ",
				core.LangHindi:   "विज्ञान: जल चक्र",
				core.LangEnglish: "Science: The Water Cycle",
			},
			Description: core.TranslatedText{
				core.LangPunjabi: "ਇਸ ਪਾਠ ਵਿੱਚ ਅਸੀਂ ਪਾਣੀ ਦੇ ਚੱਕਰ ਬਾਰੇ ਸਿੱਖਾਂਗੇ",
				core.LangHindi:   "इस पाठ में हम जल चक्र के बारे में सीखेंगे",
				core.LangEnglish: "In this lesson, we will learn about the water cycle",
			},
			Content: core.TranslatedText{
				core.LangPunjabi: "ਪਾਣੀ ਦਾ ਚੱਕਰ ਇੱਕ ਕੁਦਰਤੀ ਪ੍ਰਕਿਰਿਆ ਹੈ ਜਿਸ ਵਿੱਚ ਪਾਣੀ ਧਰਤੀ ਤੋਂ ਵਾਸ਼ਪੀਕਰਨ ਰਾਹੀਂ ਵਾਤਾਵਰਣ ਵਿੱਚ ਜਾਂਦਾ ਹੈ ਅਤੇ ਬਾਰਸ਼ ਰਾਹੀਂ ਵਾਪਸ ਆਉਂਦਾ ਹੈ।",
				core.LangHindi:   "जल चक्र एक प्राकृतिक प्रक्रिया है जिसमें पानी वाष्पीकरण द्वारा पृथ्वी से वायुमंडल में जाता है और वर्षा द्वारा वापस आता है।",
				core.LangEnglish: "The water cycle is a natural process where water moves from the Earth to the atmosphere through evaporation and returns through precipitation.",
			},
			Subject:   "Science",
			Thumbnail: "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400",
		},
		{
			Title: core.TranslatedText{
				core.LangPunjabi: "ਗਣਿਤ: ਭਿੰਨ ਅਤੇ ਦਸ਼ਮਲਵ",
				core.LangHindi:   "गणित: भिन्न और दशमलव",
				core.LangEnglish: "Mathematics: Fractions and Decimals",
			},
			Description: core.TranslatedText{
				core.LangPunjabi: "ਭਿੰਨਾਂ ਅਤੇ ਦਸ਼ਮਲਵਾਂ ਨੂੰ ਸਮਝਣਾ",
				core.LangHindi:   "भिन्नों और दशमलवों को समझना",
				core.LangEnglish: "Understanding fractions and decimals",
			},
			Content: core.TranslatedText{
				core.LangPunjabi: "ਭਿੰਨ ਇੱਕ ਪੂਰੀ ਦਾ ਹਿੱਸਾ ਹੁੰਦੀ ਹੈ। ਉਦਾਹਰਨ: 1/2 ਦਾ ਮਤਲਬ ਹੈ ਅੱਧਾ।",
				core.LangHindi:   "भिन्न एक पूर्ण का हिस्सा होती है। उदाहरण: 1/2 का मतलब है आधा।",
				core.LangEnglish: "A fraction is a part of a whole. Example: 1/2 means half.",
			},
			Subject:   "Mathematics",
			Thumbnail: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=400",
		},
		{
			Title: core.TranslatedText{
				core.LangPunjabi: "ਇਤਿਹਾਸ: ਭਾਰਤ ਦੀ ਆਜ਼ਾਦੀ",
				core.LangHindi:   "इतिहास: भारत की स्वतंत्रता",
				core.LangEnglish: "History: India's Independence",
			},
			Description: core.TranslatedText{
				core.LangPunjabi: "ਭਾਰਤ ਦੀ ਆਜ਼ਾਦੀ ਦੀ ਲੜਾਈ ਬਾਰੇ",
				core.LangHindi:   "भारत की स्वतंत्रता संग्राम के बारे में",
				core.LangEnglish: "About India's freedom struggle",
			},
			Content: core.TranslatedText{
				core.LangPunjabi: "15 ਅਗਸਤ 1947 ਨੂੰ ਭਾਰਤ ਬ੍ਰਿਟਿਸ਼ ਸ਼ਾਸਨ ਤੋਂ ਆਜ਼ਾਦ ਹੋਇਆ।",
				core.LangHindi:   "15 अगस्त 1947 को भारत ब्रिटिश शासन से स्वतंत्र हुआ।",
				core.LangEnglish: "On August 15, 1947, India gained independence from British rule.",
			},
			Subject:   "History",
			Thumbnail: "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?w=400",
		},
	}

	for _, les := range lessons {
		les.ID = uuid.New().String()
		les.Grade = seedGrade
		les.Language = core.LangMultilingual
		les.MediaType = lesson.MediaText
		les.CreatedBy = teacherID
		les.CreatedAt = now
		if _, err := cli.lesRepo.CreateLesson(ctx, les); err != nil {
			return err
		}
	}
	return nil
}

func (cli *commandLine) seedModules(ctx context.Context) error {
	now := time.Now().UTC()
	modules := []literacy.Module{
		{
			Title: core.TranslatedText{
				core.LangPunjabi: "ਕੰਪਿਊਟਰ ਦੀਆਂ ਬੁਨਿਆਦੀ ਗੱਲਾਂ",
				core.LangHindi:   "कंप्यूटर की मूल बातें",
				core.LangEnglish: "Computer Basics",
			},
			Description: core.TranslatedText{
				core.LangPunjabi: "ਕੀਬੋਰਡ, ਮਾਊਸ ਅਤੇ ਫਾਈਲ ਪ੍ਰਬੰਧਨ ਸਿੱਖੋ",
				core.LangHindi:   "कीबोर्ड, माउस और फाइल प्रबंधन सीखें",
				core.LangEnglish: "Learn keyboard, mouse, and file management",
			},
			Category: literacy.CategoryComputerBasics,
			Content: literacy.Content{Topics: []string{
				"Introduction to Computer Parts",
				"Using Keyboard and Mouse",
				"File and Folder Management",
				"Basic Operations",
			}},
			Exercises: []literacy.Exercise{{
				ID:       uuid.New().String(),
				Kind:     literacy.ExerciseQuiz,
				Question: "What is the main input device?",
				Options:  []string{"Monitor", "Keyboard", "Printer", "Speaker"},
				Answer:   "Keyboard",
			}},
		},
		{
			Title: core.TranslatedText{
				core.LangPunjabi: "ਇੰਟਰਨੈੱਟ ਸੁਰੱਖਿਆ",
				core.LangHindi:   "इंटरनेट सुरक्षा",
				core.LangEnglish: "Internet Safety",
			},
			Description: core.TranslatedText{
				core.LangPunjabi: "ਔਨਲਾਈਨ ਸੁਰੱਖਿਅਤ ਰਹਿਣਾ ਸਿੱਖੋ",
				core.LangHindi:   "ऑनलाइन सुरक्षित रहना सीखें",
				core.LangEnglish: "Learn to stay safe online",
			},
			Category: literacy.CategoryInternetSafety,
			Content: literacy.Content{Topics: []string{
				"Privacy Protection",
				"Safe Browsing",
				"Cyberbullying Awareness",
				"Password Security",
			}},
			Exercises: []literacy.Exercise{{
				ID:       uuid.New().String(),
				Kind:     literacy.ExerciseQuiz,
				Question: "Should you share your password with friends?",
				Options:  []string{"Yes", "No"},
				Answer:   "No",
			}},
		},
		{
			Title: core.TranslatedText{
				core.LangPunjabi: "ਟਾਈਪਿੰਗ ਅਭਿਆਸ",
				core.LangHindi:   "टाइपिंग अभ्यास",
				core.LangEnglish: "Typing Practice",
			},
			Description: core.TranslatedText{
				core.LangPunjabi: "ਤੇਜ਼ ਅਤੇ ਸਹੀ ਟਾਈਪਿੰਗ ਸਿੱਖੋ",
				core.LangHindi:   "तेज और सही टाइपिंग सीखें",
				core.LangEnglish: "Learn fast and accurate typing",
			},
			Category: literacy.CategoryTyping,
			Content: literacy.Content{Topics: []string{
				"Home Row Keys",
				"Touch Typing Technique",
				"Speed Building",
				"Practice Exercises",
			}},
			Exercises: []literacy.Exercise{{
				ID:   uuid.New().String(),
				Kind: literacy.ExerciseTyping,
				Text: "The quick brown fox jumps over the lazy dog",
			}},
		},
		{
			Title: core.TranslatedText{
				core.LangPunjabi: "ਕੋਡਿੰਗ ਦੀ ਸ਼ੁਰੂਆਤ",
				core.LangHindi:   "कोडिंग की शुरुआत",
				core.LangEnglish: "Introduction to Coding",
			},
			Description: core.TranslatedText{
				core.LangPunjabi: "ਬੁਨਿਆਦੀ ਪ੍ਰੋਗਰਾਮਿੰਗ ਸੰਕਲਪ ਸਿੱਖੋ",
				core.LangHindi:   "बुनियादी प्रोग्रामिंग अवधारणाएँ सीखें",
				core.LangEnglish: "Learn basic programming concepts",
			},
			Category: literacy.CategoryCoding,
			Content: literacy.Content{Topics: []string{
				"What is Coding?",
				"Sequences and Patterns",
				"Loops and Conditions",
				"Simple Programs",
			}},
			Exercises: []literacy.Exercise{{
				ID:          uuid.New().String(),
				Kind:        literacy.ExerciseCoding,
				Instruction: "Create a sequence to move forward 3 steps",
			}},
		},
		{
			Title: core.TranslatedText{
				core.LangPunjabi: "ਰਚਨਾਤਮਕ ਸਾਧਨ",
				core.LangHindi:   "रचनात्मक उपकरण",
				core.LangEnglish: "Creative Tools",
			},
			Description: core.TranslatedText{
				core.LangPunjabi: "ਡਿਜੀਟਲ ਚਿੱਤਰਕਾਰੀ ਅਤੇ ਡਿਜ਼ਾਈਨ",
				core.LangHindi:   "डिजिटल चित्रकला और डिजाइन",
				core.LangEnglish: "Digital drawing and design",
			},
			Category: literacy.CategoryCreative,
			Content: literacy.Content{Topics: []string{
				"Using Paint Tools",
				"Colors and Shapes",
				"Creating Simple Graphics",
				"Digital Art Basics",
			}},
			Exercises: []literacy.Exercise{{
				ID:          uuid.New().String(),
				Kind:        literacy.ExerciseCreative,
				Instruction: "Draw a house using basic shapes",
			}},
		},
	}

	for _, mod := range modules {
		mod.ID = uuid.New().String()
		mod.Level = literacy.LevelBeginner
		mod.CreatedAt = now
		if _, err := cli.modRepo.CreateModule(ctx, mod); err != nil {
			return err
		}
	}
	return nil
}
