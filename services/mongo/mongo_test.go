package mongo

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newTestCursor(t *testing.T, documents ...interface{}) *mongo.Cursor {
	cur, err := mongo.NewCursorFromDocuments(documents, nil, nil)
	require.NoError(t, err)
	return cur
}

// findOptionsMatcher matches *options.FindOptions by their skip, limit and projection
type findOptionsMatcher struct {
	skip       *int64
	limit      *int64
	projection interface{}
}

func (m findOptionsMatcher) Matches(x interface{}) bool {
	opts, ok := x.(*options.FindOptions)
	if !ok {
		return false
	}

	return reflect.DeepEqual(opts.Skip, m.skip) &&
		reflect.DeepEqual(opts.Limit, m.limit) &&
		reflect.DeepEqual(opts.Projection, m.projection)
}

func (m findOptionsMatcher) String() string {
	return fmt.Sprintf("find options with skip %v, limit %v and projection %v", deref(m.skip), deref(m.limit), m.projection)
}

func deref(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func int64Ptr(v int64) *int64 {
	return &v
}
