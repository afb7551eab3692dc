package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/shashiranjanraj/bistro/app/repositories"
)

// The aggregation tests run against the driver's mock deployment: canned
// server replies stand in for mongod, and the command monitor exposes the
// pipeline each method actually sent.

func TestRevenue(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("zero when no payments exist", func(mt *mtest.T) {
		repo := repositories.NewPaymentRepository(mt.Coll, "menu")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistroDb.payments", mtest.FirstBatch))

		revenue, err := repo.Revenue(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, float64(0), revenue)
	})

	mt.Run("returns the summed bucket", func(mt *mtest.T) {
		repo := repositories.NewPaymentRepository(mt.Coll, "menu")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistroDb.payments", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: nil}, {Key: "totalRevenue", Value: 128.5}},
		))

		revenue, err := repo.Revenue(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, 128.5, revenue)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "aggregate", evt.CommandName)
	})
}

func TestCategoryStats(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes grouped rows", func(mt *mtest.T) {
		repo := repositories.NewPaymentRepository(mt.Coll, "menu")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistroDb.payments", mtest.FirstBatch,
			bson.D{{Key: "category", Value: "pizza"}, {Key: "quantity", Value: int64(3)}, {Key: "revenue", Value: 42.5}},
			bson.D{{Key: "category", Value: "salad"}, {Key: "quantity", Value: int64(1)}, {Key: "revenue", Value: 9.0}},
		))

		stats, err := repo.CategoryStats(context.Background())
		require.NoError(mt, err)
		require.Len(mt, stats, 2)
		assert.Equal(mt, "pizza", stats[0].Category)
		assert.Equal(mt, int64(3), stats[0].Quantity)
		assert.Equal(mt, 42.5, stats[0].Revenue)
		assert.Equal(mt, "salad", stats[1].Category)
	})

	mt.Run("empty result stays an empty slice", func(mt *mtest.T) {
		repo := repositories.NewPaymentRepository(mt.Coll, "menu")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistroDb.payments", mtest.FirstBatch))

		stats, err := repo.CategoryStats(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, stats)
		assert.Empty(mt, stats)
	})

	mt.Run("joins item ids against the injected menu collection", func(mt *mtest.T) {
		repo := repositories.NewPaymentRepository(mt.Coll, "dishes")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistroDb.payments", mtest.FirstBatch))

		_, err := repo.CategoryStats(context.Background())
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "aggregate", evt.CommandName)

		stages, err := evt.Command.Lookup("pipeline").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, stages, 5)

		// Unwind the ordered ids, join, then unwind the join output. The
		// second unwind is what drops ids with no matching menu document.
		assert.Equal(mt, "$menuItemIds", stages[0].Document().Lookup("$unwind").StringValue())

		lookup := stages[1].Document().Lookup("$lookup").Document()
		assert.Equal(mt, "dishes", lookup.Lookup("from").StringValue())
		assert.Equal(mt, "menuItemIds", lookup.Lookup("localField").StringValue())
		assert.Equal(mt, "_id", lookup.Lookup("foreignField").StringValue())
		assert.Equal(mt, "menuItems", lookup.Lookup("as").StringValue())

		assert.Equal(mt, "$menuItems", stages[2].Document().Lookup("$unwind").StringValue())

		group := stages[3].Document().Lookup("$group").Document()
		assert.Equal(mt, "$menuItems.category", group.Lookup("_id").StringValue())
	})
}
