package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"medimatch/internal/app"
	"medimatch/pkg/catalog"
	"medimatch/pkg/domain"
)

// runShell is the interactive terminal front end. It renders what the
// application core returns and holds no business logic of its own.
func runShell(core *app.App) {
	in := bufio.NewScanner(os.Stdin)
	fmt.Println("Medicine Recommendation System")
	for {
		fmt.Println()
		if sess := core.Session(); sess != nil {
			fmt.Printf("[logged in as %s]\n", sess.PatientID)
		}
		fmt.Println("1) recommend  2) login  3) register  4) history  5) logout  6) quit")
		choice, ok := prompt(in, "> ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			doRecommend(core, in)
		case "2":
			doLogin(core, in)
		case "3":
			doRegister(core, in)
		case "4":
			doHistory(core)
		case "5":
			core.Logout()
			fmt.Println("logged out")
		case "6", "q", "quit":
			return
		}
	}
}

func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func doRecommend(core *app.App, in *bufio.Scanner) {
	symptoms, ok := prompt(in, "symptoms (comma-separated): ")
	if !ok {
		return
	}
	filterText, ok := prompt(in, "type [All/Tablet/Syrup/Other]: ")
	if !ok {
		return
	}
	filter := parseFilter(filterText)

	matches, err := core.Recommend(symptoms, filter)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptySymptoms) {
			fmt.Println("please enter symptoms")
			return
		}
		fmt.Printf("recommendation failed: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Printf("no medicine found for symptoms %q and type %q\n", symptoms, filter)
		return
	}
	for _, med := range matches {
		fmt.Println()
		fmt.Printf("Medicine Name: %s\n", med.Name)
		fmt.Printf("Manufacturer:  %s\n", med.Manufacturer)
		fmt.Printf("Description:   %s\n", med.Description)
	}
}

func parseFilter(text string) domain.TypeFilter {
	switch strings.ToLower(text) {
	case "tablet":
		return domain.FilterTablet
	case "syrup":
		return domain.FilterSyrup
	case "other":
		return domain.FilterOther
	default:
		return domain.FilterAll
	}
}

func doLogin(core *app.App, in *bufio.Scanner) {
	label := "patient ID: "
	cached, hasCached := core.CachedCredentials()
	if hasCached {
		label = fmt.Sprintf("patient ID [%s]: ", cached.PatientID)
	}
	patientID, ok := prompt(in, label)
	if !ok {
		return
	}
	if patientID == "" && hasCached {
		patientID = cached.PatientID
	}
	password, ok := prompt(in, "password: ")
	if !ok {
		return
	}
	user, err := core.Authenticate(patientID, password)
	if err != nil {
		fmt.Printf("login failed: %v\n", err)
		return
	}
	fmt.Printf("welcome back, %s\n", user.Name)
}

func doRegister(core *app.App, in *bufio.Scanner) {
	fields := []string{"patient ID", "name", "phone number", "location", "password"}
	values := make([]string, 0, len(fields))
	for _, field := range fields {
		value, ok := prompt(in, field+": ")
		if !ok {
			return
		}
		values = append(values, value)
	}
	if err := core.Register(values[0], values[1], values[2], values[3], values[4]); err != nil {
		fmt.Printf("registration failed: %v\n", err)
		return
	}
	fmt.Println("profile saved, you can log in now")
}

func doHistory(core *app.App) {
	sess := core.Session()
	if sess == nil {
		fmt.Println("log in to view search history")
		return
	}
	entries, err := core.ListHistory(sess.PatientID)
	if err != nil {
		fmt.Printf("history lookup failed: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("no search history found")
		return
	}
	for _, entry := range entries {
		fmt.Printf("%s  %s\n", entry.SearchedAt.Format("2006-01-02 15:04:05"), entry.Query)
	}
}
