package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"patientms/internal/repository"
	"patientms/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numPatients := seedCmd.Int("patients", utils.DefaultNumPatients, "Number of dummy patients to create")
	seedFile := seedCmd.String("file", defaultDataFile(), "Path to the patients data file")

	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
	checkFile := checkCmd.String("file", defaultDataFile(), "Path to the patients data file")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)
	clearFile := clearCmd.String("file", defaultDataFile(), "Path to the patients data file")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	// Parse the subcommand
	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		repo := repository.NewFileRepository(*seedFile)
		if err := repo.Init(); err != nil {
			log.Fatalf("Error initializing patient storage: %v", err)
		}

		log.Printf("Starting patient seeder with %d patients", *numPatients)
		if _, err := utils.SeedPatients(repo, *numPatients); err != nil {
			log.Fatalf("Error seeding patients: %v", err)
		}

	case "check":
		checkCmd.Parse(os.Args[2:])

		repo := repository.NewFileRepository(*checkFile)
		_, invalid, err := utils.CheckPatients(repo)
		if err != nil {
			log.Fatalf("Error checking patients: %v", err)
		}
		if len(invalid) > 0 {
			os.Exit(1)
		}

	case "clear":
		clearCmd.Parse(os.Args[2:])

		repo := repository.NewFileRepository(*clearFile)
		if err := utils.ClearPatients(repo); err != nil {
			log.Fatalf("Error clearing patients: %v", err)
		}

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func defaultDataFile() string {
	if value := os.Getenv("PATIENTS_FILE"); value != "" {
		return value
	}
	return "patients.json"
}

func printHelp() {
	fmt.Println("Data utility tool for the Patient Management System")
	fmt.Println("\nUsage:")
	fmt.Println("  patient-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Create dummy patients for testing")
	fmt.Println("               Options:")
	fmt.Println("                 --patients=N    Number of dummy patients to create (default: 25)")
	fmt.Println("                 --file=PATH     Path to the patients data file (default: patients.json)")
	fmt.Println("")
	fmt.Println("  check        Re-validate every stored record and report the ones that fail")
	fmt.Println("               Options:")
	fmt.Println("                 --file=PATH     Path to the patients data file (default: patients.json)")
	fmt.Println("")
	fmt.Println("  clear        Remove all patient records from the data file")
	fmt.Println("               Options:")
	fmt.Println("                 --file=PATH     Path to the patients data file (default: patients.json)")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  patient-tool seed --patients=100                    # Seed 100 dummy patients")
	fmt.Println("  patient-tool check --file=data/patients.json        # Validate a specific data file")
	fmt.Println("  patient-tool clear                                  # Empty the default data file")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  PATIENTS_FILE  Default data file path (default: patients.json)")
}
