package workflow

import (
	"context"
	"strconv"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/auth"
	"github.com/georgemunganga/retail/internal/modules/geo"
	"github.com/georgemunganga/retail/internal/modules/user"
)

var errNotAuthorized = apperr.Unauthorized("You are not authorized to do such action...")

// Register creates a customer account. Each answer is checked before the next question.
func (e *Engine) Register(ctx context.Context) error {
	name, err := e.io.Prompt(ctx, "\tEnter name: ")
	if err != nil {
		return err
	}
	if err := e.svc.Users.CheckNameAvailable(ctx, name); err != nil {
		return err
	}

	password, err := e.io.Password(ctx, "\tEnter password: ")
	if err != nil {
		return err
	}
	if err := user.ValidatePassword(password); err != nil {
		return err
	}

	loc, err := e.readLocation(ctx)
	if err != nil {
		return err
	}

	if _, err := e.svc.Users.Register(ctx, user.RegisterRequest{Name: name, Password: password, Location: loc}); err != nil {
		return err
	}
	e.io.Println("User successfully created!")
	return nil
}

// Login returns the authenticated actor.
func (e *Engine) Login(ctx context.Context) (*user.User, error) {
	name, err := e.io.Prompt(ctx, "\tEnter name: ")
	if err != nil {
		return nil, err
	}
	password, err := e.io.Password(ctx, "\tEnter password: ")
	if err != nil {
		return nil, err
	}
	u, err := e.svc.Auth.Login(ctx, name, password)
	if err != nil {
		e.io.Clear()
		return nil, err
	}
	e.io.Clear()
	e.io.Printf("Welcome, %s!\n", u.Name)
	return u, nil
}

func (e *Engine) readLocation(ctx context.Context) (loc geo.Point, err error) {
	lat, err := e.io.Prompt(ctx, "\tEnter latitude (0.0 - 100.0): ")
	if err != nil {
		return loc, err
	}
	lon, err := e.io.Prompt(ctx, "\tEnter longitude (0.0 - 100.0): ")
	if err != nil {
		return loc, err
	}
	return user.ParseLocation(lat, lon)
}

// ViewUsers lists users whose name contains the typed fragment.
func (e *Engine) ViewUsers(ctx context.Context, actor *user.User) error {
	if !auth.IsAdmin(actor) {
		return errNotAuthorized
	}
	part, err := e.io.Prompt(ctx, "Enter part of the name: ")
	if err != nil {
		return err
	}
	users, err := e.svc.Users.Search(ctx, actor, part)
	if err != nil {
		return err
	}
	e.userTable(users)
	return nil
}

// AdminUserEdit resolves one user by name and changes one of their fields.
func (e *Engine) AdminUserEdit(ctx context.Context, actor *user.User) error {
	if !auth.IsAdmin(actor) {
		return errNotAuthorized
	}
	match, err := e.resolveUser(ctx, actor)
	if err != nil || match == nil {
		return err
	}
	// edit the stored row, not the search snapshot
	target, err := e.svc.Users.GetUser(ctx, match.ID)
	if err != nil {
		return err
	}

	e.io.Printf("Editing user #%d %s\n", target.ID, target.Name)
	e.io.Println("1. Name\n2. Password\n3. Location")
	choice, err := e.io.ReadInt(ctx, "What would you like to update? ")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		name, err := e.io.Prompt(ctx, "\tEnter new name: ")
		if err != nil {
			return err
		}
		if err := e.svc.Users.Rename(ctx, actor, target, name); err != nil {
			return err
		}
	case 2:
		password, err := e.io.Password(ctx, "\tEnter new password: ")
		if err != nil {
			return err
		}
		if err := e.svc.Users.ChangePassword(ctx, actor, target, password); err != nil {
			return err
		}
	case 3:
		loc, err := e.readLocation(ctx)
		if err != nil {
			return err
		}
		if err := e.svc.Users.Relocate(ctx, actor, target, loc); err != nil {
			return err
		}
	default:
		return apperr.Validation("Unrecognized choice!")
	}
	e.io.Println("User information updated.")
	return nil
}

// resolveUser re-prompts until the search names exactly one user. An empty line cancels.
func (e *Engine) resolveUser(ctx context.Context, actor *user.User) (*user.User, error) {
	for {
		part, err := e.io.Prompt(ctx, "Enter the user's name (empty to cancel): ")
		if err != nil {
			return nil, err
		}
		if part == "" {
			return nil, nil
		}
		target, candidates, err := e.svc.Users.Resolve(ctx, actor, part)
		if err != nil {
			return nil, err
		}
		if target != nil {
			return target, nil
		}
		if len(candidates) == 0 {
			e.io.Printf("No user matches '%s'.\n", part)
			continue
		}
		e.io.Println("More than one user matches, please be more specific:")
		e.userTable(candidates)
	}
}

func (e *Engine) userTable(users []*user.User) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{strconv.FormatInt(u.ID, 10), u.Name, string(u.Role)})
	}
	e.io.Table([]string{"ID", "Name", "Type"}, rows)
}
