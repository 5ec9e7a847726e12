package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// editProfile runs the interactive profile edit flow: each field is shown
// with its current value, an empty answer keeps it. The form is saved as a
// whole; on success the session picks up the server's copy of the profile.
func (a *App) editProfile(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Println("Please log in first.")
		return nil
	}

	form := a.profile.Initialize(snap.User)

	var err error
	if form.FirstName, err = getOptionalText(a.reader, "First name", form.FirstName, os.Stdout); err != nil {
		return err
	}
	if form.LastName, err = getOptionalText(a.reader, "Last name", form.LastName, os.Stdout); err != nil {
		return err
	}
	if form.City, err = getOptionalText(a.reader, "City", form.City, os.Stdout); err != nil {
		return err
	}
	if form.Country, err = getOptionalText(a.reader, "Country", form.Country, os.Stdout); err != nil {
		return err
	}
	if form.Gender, err = a.readGender(form.Gender); err != nil {
		return err
	}
	if form.DateOfBirth, err = getOptionalText(a.reader, "Date of birth (YYYY-MM-DD)", form.DateOfBirth, os.Stdout); err != nil {
		return err
	}
	if form.Bio, err = getOptionalText(a.reader, "Bio", form.Bio, os.Stdout); err != nil {
		return err
	}
	if form.Interests, err = getOptionalText(a.reader, "Interests (comma separated)", form.Interests, os.Stdout); err != nil {
		return err
	}
	if form.Skills, err = getOptionalText(a.reader, "Skills (comma separated)", form.Skills, os.Stdout); err != nil {
		return err
	}

	res := a.profile.Save(ctx, form)
	if res.ErrMessage != "" {
		fmt.Println(res.ErrMessage)
		return nil
	}

	fmt.Printf("Profile saved for %s.\n", res.User.FullName())
	return nil
}

// readGender accepts only the supported gender values; anything else keeps
// the current one, the way the age prompt ignores non-numbers.
func (a *App) readGender(current string) (string, error) {
	value, err := getOptionalText(a.reader, "Gender (male/female/other)", current, os.Stdout)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "male", "female", "other":
		return value, nil
	}
	fmt.Println("Not one of male/female/other, keeping current value.")
	return current, nil
}

// whoami prints the profile of the logged-in user.
func (a *App) whoami() error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Println("Not logged in.")
		return nil
	}

	u := snap.User
	fmt.Printf("%s <%s>\n", u.FullName(), u.Email)
	if loc := u.Location(); loc != "" {
		fmt.Printf("Location: %s\n", loc)
	}
	if u.DateOfBirth != "" {
		fmt.Printf("Date of birth: %s\n", u.DateOfBirth)
	}
	if u.Bio != "" {
		fmt.Printf("Bio: %s\n", u.Bio)
	}
	if len(u.Interests) > 0 {
		fmt.Printf("Interests: %v\n", u.Interests)
	}
	if len(u.Skills) > 0 {
		fmt.Printf("Skills: %v\n", u.Skills)
	}
	return nil
}
