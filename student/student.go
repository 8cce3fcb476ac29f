// Package student holds the record type used as key when benchmarking the hash tables.
package student

import (
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"regexp"
	"strconv"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Student - Represents a student identified by a unique ID. Name, email and major are validated whenever set.
type Student struct {
	id    int
	name  string
	email string
	major string
}

// IDGenerator - Hands out student IDs 1, 2, 3, ...
// It is owned by whoever creates students and is not safe for concurrent use.
type IDGenerator struct {
	last int
}

// NewIDGenerator - Returns a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next - Returns the next unused ID
func (I *IDGenerator) Next() int {
	I.last++
	return I.last
}

// New - Returns a new student with the next ID from gen.
//   - name must not be blank and at least 2 characters long
//   - email must look like local@domain.tld
//   - major must not be blank and at least 3 characters long
//
// It returns:
//   - student is a pointer to the created Student
//   - err is of type crt.InvalidArgument if any field is not valid, no ID is consumed in that case
func New(gen *IDGenerator, name, email, major string) (student *Student, err error) {
	if gen == nil {
		err = crt.NewInvalidArgument("an ID generator must be given")
		return
	}

	s := &Student{}
	if err = s.SetName(name); err != nil {
		return
	}
	if err = s.SetEmail(email); err != nil {
		return
	}
	if err = s.SetMajor(major); err != nil {
		return
	}
	s.id = gen.Next()

	student = s

	return
}

// Generate - Returns n valid students with IDs from gen
func Generate(gen *IDGenerator, n int) (students []*Student, err error) {
	students = make([]*Student, n)
	for i := range students {
		students[i], err = New(gen, fmt.Sprintf("Student %d", i), fmt.Sprintf("student%d@university.com", i), "Computer Science")
		if err != nil {
			students = nil
			return
		}
	}

	return
}

// ID - Returns the unique identifier of the student
func (S *Student) ID() int {
	return S.id
}

// Name - Returns the name of the student
func (S *Student) Name() string {
	return S.name
}

// Email - Returns the email of the student
func (S *Student) Email() string {
	return S.email
}

// Major - Returns the major of the student
func (S *Student) Major() string {
	return S.major
}

// SetName - Sets the name, it must not be blank and at least 2 characters long
func (S *Student) SetName(name string) (err error) {
	if strings.TrimSpace(name) == "" {
		err = crt.NewInvalidArgument("name can not be empty")
		return
	}
	if len([]rune(name)) < 2 {
		err = crt.NewInvalidArgument("name must be at least 2 characters long, got %q", name)
		return
	}

	S.name = name

	return
}

// SetEmail - Sets the email, it must look like local@domain.tld
func (S *Student) SetEmail(email string) (err error) {
	if !emailPattern.MatchString(email) {
		err = crt.NewInvalidArgument("invalid email address %q", email)
		return
	}

	S.email = email

	return
}

// SetMajor - Sets the major, it must not be blank and at least 3 characters long
func (S *Student) SetMajor(major string) (err error) {
	if strings.TrimSpace(major) == "" {
		err = crt.NewInvalidArgument("major can not be empty")
		return
	}
	if len([]rune(major)) < 3 {
		err = crt.NewInvalidArgument("major must be at least 3 characters long, got %q", major)
		return
	}

	S.major = major

	return
}

// Key - Returns the decimal ID as bytes, the representation used when a student is a hash table key
func (S *Student) Key() []byte {
	return strconv.AppendInt(nil, int64(S.id), 10)
}

// String - Returns the decimal ID
func (S *Student) String() string {
	return strconv.Itoa(S.id)
}

// Equal - Returns true if other is a student with the same ID
func (S *Student) Equal(other *Student) bool {
	if S == nil || other == nil {
		return S == other
	}
	return S.id == other.id
}
