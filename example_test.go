package tendril_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/pkg/adapters/memory"
	"github.com/aretw0/tendril/pkg/validate"
)

// ExampleAsker_Int shows the retry loop: bad answers are rejected with a
// reason and the question is asked again until the answer is accepted.
func ExampleAsker_Int() {
	// A scripted source stands in for the terminal.
	src := memory.New("abc", "200", "30")
	ask := tendril.New(
		tendril.WithSource(src),
		tendril.WithOutput(os.Stdout),
	)

	age, err := ask.Int(context.Background(), "Enter age",
		tendril.WithValidators(validate.Age(0, 120)),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("age:", age)
	// Output:
	// Enter age: must be a whole number
	// Enter age: age must be between 0 and 120
	// Enter age: age: 30
}

// ExampleAsker_Select shows a numbered choice list; the answer may be the
// option text or its number.
func ExampleAsker_Select() {
	ask := tendril.New(
		tendril.WithSource(memory.New("2")),
		tendril.WithOutput(os.Stdout),
	)

	color, err := ask.Select(context.Background(), "Color", []string{"red", "green", "blue"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("picked:", color)
	// Output:
	//   1) red
	//   2) green
	//   3) blue
	// Color: picked: green
}
