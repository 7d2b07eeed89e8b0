package coral_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	coral "github.com/yunusuzun/SwiftCoral"
)

func ExampleBuildURL() {
	e := coral.Descriptor{
		Base:  "https://api.example.com/v2",
		Route: "/users/42",
		Verb:  http.MethodGet,
		Query: map[string]string{"expand": "profile"},
	}

	u, err := coral.BuildURL(e)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(u.String())
	// Output: https://api.example.com/v2/users/42?expand=profile
}

func ExampleBuild() {
	c, err := coral.Build(
		coral.WithTimeout(10*time.Second),
		coral.WithUserAgent("myapp/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client ready")
	// Output: client ready
}

func ExampleClient_Perform() {
	c, err := coral.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	type user struct {
		Name string `json:"name"`
	}

	e := coral.Descriptor{
		Base:  "https://api.example.com",
		Route: "/v1/users/42",
		Verb:  http.MethodGet,
	}

	var u user
	if err := c.Perform(context.Background(), e, coral.WithDestination(&u)); err != nil {
		// Branch on the taxonomy with errors.Is, e.g. coral.ErrRequestFailed.
		return
	}
}
