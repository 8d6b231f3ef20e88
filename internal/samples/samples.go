// Package samples holds the example emails processed by the CLI's -examples mode.
package samples

// Example is a named sample email
type Example struct {
	Title   string
	Content string
}

const (
	UrgentWorkEmail = `Email:
Hello Laxmana,
I'd like to schedule an URGENT meeting tomorrow at 3PM to discuss the AI project.
Please confirm your availability immediately.
Regards,
Project Manager`

	PersonalEmail = `Email:
Hey Laxmana!
How are you doing? Want to grab dinner this weekend?
Let me know if Saturday works for you!
Cheers,
Raj`

	SpamEmail = `Email:
CONGRATULATIONS! You've won the lottery!
Click here now to claim your free money!
Act now, limited time offer!`
)

// All returns the sample emails in display order
func All() []Example {
	return []Example{
		{Title: "EXAMPLE 1: Urgent Work Email", Content: UrgentWorkEmail},
		{Title: "EXAMPLE 2: Personal Email", Content: PersonalEmail},
		{Title: "EXAMPLE 3: Spam Email", Content: SpamEmail},
	}
}
