package uitrail_test

import (
	"fmt"

	"github.com/uitrail/uitrail"
	"github.com/uitrail/uitrail/pkg/model"
)

// ExampleResolver_Resolve locates a checkbox inside a captured settings
// page and prints its breadcrumb path.
func ExampleResolver_Resolve() {
	doc, err := model.Parse([]byte(`{
	  "root": {"k": "grp", "b": [0, 0, 400, 300], "c": [
	    {"k": "border", "t": "Display", "c": [
	      {"i": 10, "k": "chk", "t": "Show line numbers", "b": [20, 40, 150, 20]}
	    ]}
	  ]}
	}`))
	if err != nil {
		panic(err)
	}
	snap := model.Index(&doc.Root)

	r := uitrail.New()
	path, ok := r.Resolve(snap, uitrail.Request{Target: snap.ByID(10)})
	fmt.Println(ok, path)
	// Output: true Display | Show line numbers
}
