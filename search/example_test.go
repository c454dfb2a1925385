package search_test

import (
	"fmt"

	"github.com/admingraph/shopify-mcp/search"
)

func ExampleSearcher_Search() {
	searcher := search.NewSearcher(search.Config{})
	defer searcher.Close()

	docs := []search.Doc{
		{ID: "Product", Name: "Product", Kind: "OBJECT", Description: "A product in the store."},
		{ID: "Product.totalInventory", Name: "totalInventory", Kind: "FIELD", Parent: "Product", Type: "Int", Description: "Total inventory across locations."},
		{ID: "InventoryLevel", Name: "InventoryLevel", Kind: "OBJECT", Description: "Inventory quantity at a location."},
	}

	hits, err := searcher.Search("inventory", 2, docs)
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}
	for _, h := range hits {
		fmt.Println(h.ID)
	}
	// Output:
	// InventoryLevel
	// Product.totalInventory
}
