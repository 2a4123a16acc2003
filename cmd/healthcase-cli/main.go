package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/catalog"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/config"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/llm"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/logger"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/matcher"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/service"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/triage"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/validator"
)

var symptomQuestions = []struct {
	key      string
	question string
}{
	{"fever", "Do you have fever?"},
	{"fatigue", "Do you have fatigue?"},
	{"cough", "Do you have cough?"},
	{"headache", "Do you have headache?"},
	{"body_pain", "Do you have body pain?"},
	{"nausea", "Do you have nausea?"},
	{"vomiting", "Do you have vomiting?"},
	{"diarrhea", "Do you have diarrhea?"},
	{"rash", "Do you have rash?"},
	{"sore_throat", "Do you have sore throat?"},
	{"shortness_of_breath", "Do you have shortness of breath?"},
	{"chest_pain", "Do you have chest pain?"},
	{"confusion", "Do you have confusion?"},
	{"recent_travel", "Recent travel or mosquito bites?"},
	{"medication", "Any medication taken recently?"},
	{"appetite_change", "Appetite changes?"},
	{"urine_change", "Urine changes?"},
	{"weight_loss", "Weight loss?"},
	{"night_sweats", "Night sweats?"},
	{"exposure", "Recent exposure to someone sick?"},
}

var labQuestions = []struct {
	key      string
	question string
}{
	{"WBC", "WBC count: "},
	{"Platelets", "Platelet count: "},
	{"Hemoglobin", "Hemoglobin level: "},
	{"Blood_Sugar", "Blood Sugar level: "},
	{"ALT", "ALT (Liver) level: "},
	{"Creatinine", "Creatinine (Kidney) level: "},
}

var outcomeQuestions = []struct {
	key      string
	question string
}{
	{"Malaria", "Malaria test result (positive/negative): "},
	{"Dengue", "Dengue test result (positive/negative): "},
	{"Typhoid", "Typhoid test result (positive/negative): "},
}

func main() {
	useMock := flag.Bool("mock", false, "use mock analysis for testing")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Log.Level = "debug"
	}
	if *useMock {
		cfg.LLM.Backend = "mock"
	}

	log, err := logger.NewLogger(cfg.Log.Level, "console", "healthcase-cli")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	fmt.Printf("Welcome to %s\n", config.AppName)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Educational Symptom Checker")
	fmt.Println("NOT for medical diagnosis or treatment")
	fmt.Println(strings.Repeat("=", 50))

	reader := bufio.NewReader(os.Stdin)
	raw := collectUserData(reader)

	checker := triage.NewChecker(triage.DefaultRules(), log)
	scorer := matcher.NewScorer(catalog.Builtin(), log)
	analyzer := service.NewAnalyzer(checker, scorer, buildAnalysisService(cfg, log), log)

	outcome, err := analyzer.Analyze(context.Background(), raw)
	if err != nil {
		fmt.Printf("\nError: Invalid input - %v\n", err)
		os.Exit(1)
	}

	if outcome.Emergency != nil {
		fmt.Println("\n" + strings.Repeat("!", 50))
		fmt.Println("EMERGENCY ALERT!")
		fmt.Println("Based on your symptoms, seek immediate medical attention!")
		fmt.Printf("Reasons: %s\n", strings.Join(outcome.Emergency.Reasons, ", "))
		fmt.Println("Call emergency services or go to the nearest hospital.")
		fmt.Println(strings.Repeat("!", 50))
		return
	}

	fmt.Println("\nTop Matches:")
	for i, match := range outcome.Matches {
		if i >= 3 {
			break
		}
		fmt.Printf("%d. %s: %.0f%% match (symptoms %.0f%%, tests %.0f%%, basic info %.0f%%)\n",
			i+1, match.Disease, match.OverallMatch*100,
			match.SymptomMatch*100, match.TestMatch*100, match.BasicMatch*100)
	}

	fmt.Println("\nAnalyzing symptoms...")
	fmt.Println(strings.Repeat("-", 30))
	if outcome.UsedFallback {
		fmt.Println("Using fallback analysis...")
	}
	fmt.Println(outcome.Analysis)
	fmt.Println(strings.Repeat("-", 30))
	fmt.Println("Analysis complete.")
}

func collectUserData(reader *bufio.Reader) validator.RawData {
	fmt.Println("\nPlease provide the following information:")

	fmt.Println("\n--- Basic Information ---")
	basicInfo := map[string]any{}
	basicInfo["age"] = promptValidated(reader, "Age: ", func(s string) error {
		_, err := validator.Age(s)
		return err
	})
	basicInfo["gender"] = promptValidated(reader, "Gender (M/F): ", func(s string) error {
		_, err := validator.Gender(s)
		return err
	})
	basicInfo["weight"] = promptValidated(reader, "Weight (kg): ", func(s string) error {
		_, err := validator.Weight(s)
		return err
	})
	basicInfo["temperature"] = promptValidated(reader, "Temperature (°C): ", func(s string) error {
		_, err := validator.Temperature(s)
		return err
	})
	basicInfo["duration"] = promptValidated(reader, "Duration of symptoms (days): ", func(s string) error {
		_, err := validator.Duration(s)
		return err
	})
	basicInfo["chronic_diseases"] = promptYesNo(reader, "Any chronic diseases? (y/n): ")

	fmt.Println("\n--- Symptoms ---")
	symptoms := map[string]any{}
	for _, q := range symptomQuestions {
		symptoms[q.key] = promptYesNo(reader, q.question+" (y/n): ")
	}

	if symptoms["fever"] == true {
		symptoms["fever_duration"] = promptValidated(reader, "Duration of fever (in days): ", func(s string) error {
			_, err := validator.Age(s)
			return err
		})
	}
	if symptoms["cough"] == true {
		symptoms["cough_type"] = promptValidated(reader, "Cough type (dry/productive): ", func(s string) error {
			_, err := validator.CoughType(s)
			return err
		})
	}

	fmt.Println("\n--- Test Results ---")
	testResults := map[string]any{}
	if promptYesNo(reader, "Do you have blood test results? (y/n): ") {
		for _, q := range labQuestions {
			name := q.key
			testResults[name] = promptValidated(reader, q.question, func(s string) error {
				_, err := validator.LabValue(s, name)
				return err
			})
		}
		for _, q := range outcomeQuestions {
			name := q.key
			testResults[name] = promptValidated(reader, q.question, func(s string) error {
				_, err := validator.TestOutcome(s, name)
				return err
			})
		}
	}

	return validator.RawData{
		BasicInfo:   basicInfo,
		Symptoms:    symptoms,
		TestResults: testResults,
	}
}

// promptValidated re-asks until the answer validates; an empty answer means
// "unknown" and returns nil.
func promptValidated(reader *bufio.Reader, prompt string, check func(string) error) any {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			return nil
		}
		if err := check(answer); err != nil {
			fmt.Printf("Invalid input: %v. Please try again.\n", err)
			continue
		}
		return answer
	}
}

func promptYesNo(reader *bufio.Reader, prompt string) bool {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		value, verr := validator.Boolean(strings.TrimSpace(line))
		if verr != nil {
			fmt.Println("Please enter 'y' for yes or 'n' for no.")
			continue
		}
		return value
	}
}

func buildAnalysisService(cfg *config.Config, log *zap.Logger) *llm.Service {
	mock := llm.NewMockBackend()
	if cfg.LLM.Backend == "mock" {
		return llm.NewService(mock, mock, log)
	}
	openrouter := llm.NewOpenRouterBackend(llm.OpenRouterConfig{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, log)
	return llm.NewService(openrouter, mock, log)
}
