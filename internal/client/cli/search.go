package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/search"
)

// searchCmd prompts for filters (an empty answer means "no filter") and runs
// a fresh search from page one.
func (a *App) searchCmd(ctx context.Context) error {
	criteria := models.SearchCriteria{}

	var err error
	if criteria.Search, err = getSimpleText(a.reader, "Search text (name or email, empty for all)", os.Stdout); err != nil {
		return err
	}
	if criteria.City, err = getSimpleText(a.reader, "City (empty for any)", os.Stdout); err != nil {
		return err
	}
	if criteria.Country, err = getSimpleText(a.reader, "Country (empty for any)", os.Stdout); err != nil {
		return err
	}

	gender, err := getSimpleText(a.reader, "Gender (male/female/other, empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	criteria.Gender = models.Gender(gender)

	if criteria.MinAge, err = a.readAge("Minimum age (empty for none)"); err != nil {
		return err
	}
	if criteria.MaxAge, err = a.readAge("Maximum age (empty for none)"); err != nil {
		return err
	}

	a.renderState(a.search.Search(ctx, criteria))
	return nil
}

func (a *App) readAge(prompt string) (int, error) {
	value, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Println("Not a number, ignoring.")
		return 0, nil
	}
	return n, nil
}

func (a *App) nextPage(ctx context.Context) error {
	st := a.search.State()
	if st.Result == nil || !st.Result.Pagination.HasNext {
		fmt.Println("Already on the last page.")
		return nil
	}
	a.renderState(a.search.ChangePage(ctx, st.Criteria.Page+1))
	return nil
}

func (a *App) prevPage(ctx context.Context) error {
	st := a.search.State()
	if st.Result == nil || !st.Result.Pagination.HasPrev {
		fmt.Println("Already on the first page.")
		return nil
	}
	a.renderState(a.search.ChangePage(ctx, st.Criteria.Page-1))
	return nil
}

func (a *App) gotoPage(ctx context.Context, arg string) error {
	page, err := strconv.Atoi(arg)
	if err != nil || page < 1 {
		fmt.Println("Usage: page <number>")
		return nil
	}
	a.renderState(a.search.ChangePage(ctx, page))
	return nil
}

func (a *App) resetSearch(ctx context.Context) error {
	a.renderState(a.search.Reset(ctx))
	return nil
}

// renderState prints a search outcome: either the error message, or the
// result rows followed by a pagination footer.
func (a *App) renderState(st search.State) {
	if st.Status == search.StatusError {
		fmt.Println(st.ErrMessage)
		return
	}
	if st.Result == nil {
		return
	}

	if len(st.Result.Users) == 0 {
		fmt.Println("No users found.")
		return
	}

	for _, u := range st.Result.Users {
		line := u.FullName() + " <" + u.Email + ">"
		if loc := u.Location(); loc != "" {
			line += " (" + loc + ")"
		}
		fmt.Println(line)
		if u.Bio != "" {
			fmt.Println("  " + u.Bio)
		}
		if len(u.Interests) > 0 {
			fmt.Println("  Interests: " + strings.Join(u.Interests, ", "))
		}
		if len(u.Skills) > 0 {
			fmt.Println("  Skills: " + strings.Join(u.Skills, ", "))
		}
		if u.CreatedAt != "" {
			fmt.Println("  Joined: " + u.CreatedAt)
		}
	}

	p := st.Result.Pagination
	fmt.Printf("Page %d of %d (%d users total)", p.Page, p.TotalPages, p.Total)
	if p.HasNext {
		fmt.Print("  [next]")
	}
	if p.HasPrev {
		fmt.Print("  [prev]")
	}
	fmt.Println()
}
