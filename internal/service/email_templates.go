package service

import "fmt"

func welcomeEmailTemplate(name, goalsURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is ready. Post a goal with a deadline and let the community decide what happens if you miss it.

Browse public goals: %s

Best,
The %s Team`, name, goalsURL, appName)

	return subject, body
}
