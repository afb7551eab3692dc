package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/database"
)

func init() {
	Register("menu", SeedMenu)
	Register("reviews", SeedReviews)
}

// SeedMenu inserts a starter menu. Skips collections that already have data
// so reruns are safe.
func SeedMenu(ctx context.Context, db *database.DB) error {
	col := db.Collection(database.ColMenu)

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	items := []interface{}{
		models.MenuItem{Name: "Roast Duck Breast", Recipe: "Roasted duck breast served with a red wine jus and root vegetables", Category: "salad", Price: 14.5},
		models.MenuItem{Name: "Tuna Niçoise", Recipe: "Seared tuna with green beans, olives, egg and anchovy dressing", Category: "salad", Price: 12.5},
		models.MenuItem{Name: "Fish Parmentier", Recipe: "Baked white fish under a herbed potato crust", Category: "pizza", Price: 11.5},
		models.MenuItem{Name: "Escalope de Veau", Recipe: "Pan-fried veal escalope with lemon butter", Category: "soup", Price: 17.5},
		models.MenuItem{Name: "Chicken and Walnut Salad", Recipe: "Grilled chicken with toasted walnuts and a mustard vinaigrette", Category: "salad", Price: 10.0},
		models.MenuItem{Name: "Tiramisu", Recipe: "Espresso-soaked sponge layered with mascarpone", Category: "dessert", Price: 6.5},
		models.MenuItem{Name: "Panna Cotta", Recipe: "Vanilla cream set with a berry coulis", Category: "dessert", Price: 6.0},
		models.MenuItem{Name: "Fresh Lime Soda", Recipe: "Sparkling water with fresh lime and mint", Category: "drinks", Price: 3.5},
	}

	_, err = col.InsertMany(ctx, items)
	return err
}

// SeedReviews inserts a handful of sample reviews.
func SeedReviews(ctx context.Context, db *database.DB) error {
	col := db.Collection(database.ColReviews)

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	reviews := []interface{}{
		models.Review{Name: "Marcel Lefevre", Details: "The duck was perfectly cooked and the service was quick.", Rating: 5},
		models.Review{Name: "Anita Rao", Details: "Generous portions, loved the tiramisu.", Rating: 4.5},
		models.Review{Name: "Tom Bradley", Details: "Good food, the salad could use more dressing.", Rating: 4},
	}

	_, err = col.InsertMany(ctx, reviews)
	return err
}
