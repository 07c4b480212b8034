package fieldvalidation_test

import (
	"fmt"

	v "github.com/Gobd/fieldvalidation"
)

func ExampleCheck() {
	text := ""
	err := v.Check(&text, v.Required("Email is required"), v.Email("Invalid email"))
	fmt.Println(err)

	text = "ann@example"
	err = v.Check(&text, v.Required("Email is required"), v.Email("Invalid email"))
	fmt.Println(err)

	text = "ann@example.com"
	err = v.Check(&text, v.Required("Email is required"), v.Email("Invalid email"))
	fmt.Println(err)
	// Output:
	// Email is required
	// Invalid email
	// <nil>
}

func ExampleRuleSet_Check() {
	age := v.RuleSet{v.NumericRange(1, 100, "Out of range")}

	for _, in := range []string{"42", "150", "forty", ""} {
		fmt.Printf("%q: %v\n", in, age.Check(&in))
	}
	// Output:
	// "42": <nil>
	// "150": Out of range
	// "forty": Out of range
	// "": <nil>
}

func ExampleRegister() {
	const kindEven v.Kind = "example_even"
	v.Register(kindEven, v.SkipEmpty(func(text string, _ v.TextRule) bool {
		return len(text)%2 == 0
	}))

	rule := v.NewRule(kindEven, "Use an even number of characters", v.Bounds{})
	fmt.Println(v.CheckString("abc", rule))
	fmt.Println(v.CheckString("abcd", rule))
	// Output:
	// Use an even number of characters
	// <nil>
}

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   string `json:"age"`
}

func (u *User) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&u.Name, v.Required("Name is required"), v.LettersOnly("Letters only")),
		v.Field(&u.Email, v.Required("Email is required"), v.Email("Invalid email")),
		v.Field(&u.Age, v.NumericRange(0, 150, "Invalid age")),
	}
}

func ExampleValidate() {
	user := &User{Name: "Alice", Email: "alice@example.com", Age: "30"}
	if err := v.Validate(user); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("valid")
	// Output: valid
}

func ExampleValidate_error() {
	user := &User{Age: "-1"}
	err := v.Validate(user)
	fmt.Println(err)
	// Output: age: Invalid age; email: Email is required; name: Name is required.
}

func ExampleUnmarshalAndValidate() {
	body := []byte(`{"name":"Bob","email":"bob@example.com","age":"25"}`)
	var user User
	if err := v.UnmarshalAndValidate(body, &user); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(user.Name)
	// Output: Bob
}
