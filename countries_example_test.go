// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package countries_test

import (
	"context"
	"fmt"

	"github.com/z5labs/countries"
	"github.com/z5labs/countries/config"
)

func ExampleCollection_Name() {
	middleEarth := "Middle Earth"

	c := countries.New(
		countries.Settings(config.Static(config.Settings{
			Override: map[string]*string{"NZ": &middleEarth},
		})),
	)

	fmt.Println(c.Name(context.Background(), "NZ"))
	// Output: Middle Earth
}

func ExampleCollection_All() {
	c := countries.New(
		countries.Settings(config.Static(config.Settings{
			Only: map[string]string{
				"NZ": "New Zealand",
				"AU": "Australia",
			},
		})),
	)

	for code, name := range c.All(context.Background()) {
		fmt.Println(code, name)
	}
	// Output:
	// AU Australia
	// NZ New Zealand
}
