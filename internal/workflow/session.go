package workflow

import (
	"context"
	"errors"
	"io"

	"github.com/georgemunganga/retail/internal/modules/auth"
	"github.com/georgemunganga/retail/internal/modules/user"
)

const choicePrompt = "Please make your choice: "

// action is one entry of the user menu.
type action struct {
	choice int
	label  string
	shown  func(*user.User) bool
	run    func(context.Context, *user.User) error
}

func everyone(*user.User) bool { return true }

func (e *Engine) actions() []action {
	return []action{
		{1, "View Stores within 30 miles", everyone, e.BrowseStores},
		{2, "View Product List", everyone, e.ViewProducts},
		{3, "Place a Order", everyone, e.PlaceOrder},
		{4, "View 5 recent orders", everyone, e.RecentOrders},
		{5, "[M] Update Product", auth.CanManage, e.UpdateProduct},
		{6, "[M] View 5 recent Product Updates Info", auth.CanManage, e.RecentUpdates},
		{7, "[M] View 5 Popular Items", auth.CanManage, e.PopularProducts},
		{8, "[M] View 5 Popular Customers", auth.CanManage, e.PopularCustomers},
		{9, "[M] Place Product Supply Request to Warehouse", auth.CanManage, e.PlaceSupplyRequest},
		{10, "[A] View Users", auth.IsAdmin, e.ViewUsers},
		{11, "[A] View Managers", auth.IsAdmin, e.ViewManagers},
		{12, "[A] Update User Information", auth.IsAdmin, e.AdminUserEdit},
	}
}

// Run shows the main menu until the actor exits or input runs out. It
// returns ctx.Err() when ctx ends, even while a prompt is waiting.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.io.Println("MAIN MENU")
		e.io.Println("---------")
		e.io.Println("1. Create user")
		e.io.Println("2. Log in")
		e.io.Println("9. < EXIT")

		choice, err := e.io.ReadInt(ctx, choicePrompt)
		if err != nil {
			return inputDone(err)
		}
		switch choice {
		case 1:
			err = e.Register(ctx)
		case 2:
			var u *user.User
			if u, err = e.Login(ctx); err == nil {
				err = e.userSession(ctx, u)
			}
		case 9:
			return nil
		default:
			e.io.Clear()
			e.io.Println("Unrecognized choice!")
			continue
		}
		if e.report("main menu", err) {
			return ctx.Err()
		}
	}
}

// userSession runs the logged-in menu until the actor logs out.
func (e *Engine) userSession(ctx context.Context, u *user.User) error {
	actions := e.actions()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.io.Println("MAIN MENU")
		e.io.Println("---------")
		for _, a := range actions {
			if a.shown(u) {
				e.io.Printf("%d. %s\n", a.choice, a.label)
			}
		}
		e.io.Println(".........................")
		e.io.Println("20. Log out")

		choice, err := e.io.ReadInt(ctx, choicePrompt)
		if err != nil {
			return err
		}
		if choice == 20 {
			e.io.Clear()
			return nil
		}

		var run func(context.Context, *user.User) error
		for _, a := range actions {
			if a.choice == choice {
				run = a.run
				break
			}
		}
		if run == nil {
			e.io.Clear()
			e.io.Println("Unrecognized choice!")
			continue
		}
		// hidden entries still run; each flow checks the actor itself
		if e.report("user menu", run(ctx, u)) {
			return io.EOF
		}
	}
}

func inputDone(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
