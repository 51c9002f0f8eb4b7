// Package workflow drives the interactive session: menus and the multi-step
// flows behind them.
package workflow

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/console"
	"github.com/georgemunganga/retail/internal/modules/auth"
	"github.com/georgemunganga/retail/internal/modules/inventory"
	"github.com/georgemunganga/retail/internal/modules/order"
	"github.com/georgemunganga/retail/internal/modules/report"
	"github.com/georgemunganga/retail/internal/modules/supply"
	"github.com/georgemunganga/retail/internal/modules/user"
)

const timeLayout = "2006-01-02 15:04:05"

// Services bundles the business services a session talks to.
type Services struct {
	Users     user.Service
	Auth      auth.Service
	Inventory inventory.Service
	Orders    order.Service
	Supply    supply.Service
	Reports   report.Service
}

// Engine runs workflows against one console.
type Engine struct {
	io  console.Port
	svc Services
	log *log.Logger
}

func New(port console.Port, svc Services, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{io: port, svc: svc, log: logger}
}

// report shows err to the actor. It returns true once input is exhausted or
// the session was cancelled.
func (e *Engine) report(op string, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindUnauthorized, apperr.KindNotFound:
		e.io.Println(apperr.MessageOf(err))
	default:
		e.log.Printf("%s: %v", op, err)
		e.io.Println("Something went wrong: " + apperr.MessageOf(err))
	}
	return false
}
