package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Products covers the product catalog endpoints.
func Products() harness.Suite {
	return harness.Suite{
		Name:      "products",
		Title:     "Products Suite",
		Scenarios: productsScenarios(),
	}
}

func productsScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:    "Create Product",
			Section: "Products",
			Method:  "POST",
			Path:    "/products",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"workspace_id": "{workspace}",
				"name":         "Brand Kit Template",
				"slug":         "{slug:brand-kit}",
				"price":        19.0,
				"currency":     "usd",
				"type":         "digital",
			},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "product", Paths: idPaths("product")},
			},
			PassMessage: "Product created",
		},
		{
			Name:        "List Products",
			Method:      "GET",
			Path:        "/products",
			Require:     []string{"token"},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Products listed",
		},
		{
			Name:    "Update Product",
			Method:  "PUT",
			Path:    "/products/{product}",
			Require: []string{"token", "product"},
			Body: map[string]any{
				"price": 24.0,
			},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Product price updated",
		},
		{
			Name:        "Product Inventory",
			Kind:        harness.FeatureProbe,
			Method:      "GET",
			Path:        "/products/{product}/inventory",
			Require:     []string{"token", "product"},
			Expect:      []int{200},
			PassMessage: "Product inventory available",
		},
		{
			Name:        "Delete Product",
			Method:      "DELETE",
			Path:        "/products/{product}",
			Require:     []string{"token", "product"},
			Expect:      []int{200, 204},
			PassMessage: "Product deleted",
		},
	}
}
