package book

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidISBN           = errors.New("invalid isbn")
	ErrInvalidStock          = errors.New("stock quantity cannot be negative")
	ErrInvalidAvailability   = errors.New("available quantity must be between 0 and stock quantity")
	ErrNoCopiesAvailable     = errors.New("no copies available")
	ErrAllCopiesAccountedFor = errors.New("all copies already accounted for")
)

// ISBN-10 or ISBN-13, digits only (10 may end in X).
var isbnRegex = regexp.MustCompile(`^(\d{9}[\dXx]|\d{13})$`)

type ISBN struct {
	value string
}

func NewISBN(s string) (ISBN, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if !isbnRegex.MatchString(s) {
		return ISBN{}, ErrInvalidISBN
	}
	return ISBN{value: strings.ToUpper(s)}, nil
}

func (i ISBN) Value() string {
	return i.value
}

// Ledger tracks a book's physical copies: stockQuantity is the total,
// availableQuantity the number currently reservable. Only the reservation
// engine mutates it, always under the book row lock.
type Ledger struct {
	stockQuantity     int32
	availableQuantity int32
}

func ReconstructLedger(stockQuantity, availableQuantity int32) (*Ledger, error) {
	if stockQuantity < 0 {
		return nil, ErrInvalidStock
	}
	if availableQuantity < 0 || availableQuantity > stockQuantity {
		return nil, ErrInvalidAvailability
	}
	return &Ledger{
		stockQuantity:     stockQuantity,
		availableQuantity: availableQuantity,
	}, nil
}

func (l *Ledger) IsAvailable() bool {
	return l.availableQuantity > 0
}

// Reserve takes one copy out of the available pool.
func (l *Ledger) Reserve() error {
	if l.availableQuantity <= 0 {
		return ErrNoCopiesAvailable
	}
	l.availableQuantity--
	return nil
}

// Release returns one copy to the available pool. It refuses to push the
// ledger past stockQuantity, which would mean a copy was released twice.
func (l *Ledger) Release() error {
	if l.availableQuantity >= l.stockQuantity {
		return ErrAllCopiesAccountedFor
	}
	l.availableQuantity++
	return nil
}

func (l *Ledger) StockQuantity() int32     { return l.stockQuantity }
func (l *Ledger) AvailableQuantity() int32 { return l.availableQuantity }
