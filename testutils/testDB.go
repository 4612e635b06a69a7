package testutils

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IntegrationTestDatabaseURL is the connection string of the integration tests DB
const IntegrationTestDatabaseURL = "mongodb://localhost:8003/pawtel_test"

// IntegrationTestConnectTimeout bounds every ping to the integration tests DB
const IntegrationTestConnectTimeout = 5 * time.Second

const integrationTestDBBootWait = 20 * time.Second

// ConnectToIntegrationTestDB waits for the integration tests DB to become available
// and returns a handle to it. The database is dropped and the client closed when the test ends.
func ConnectToIntegrationTestDB(t *testing.T) *mongo.Database {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(IntegrationTestDatabaseURL))
	if err != nil {
		t.Fatalf("could not create integration test db client: %s", err)
	}

	deadline := time.Now().Add(integrationTestDBBootWait)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), IntegrationTestConnectTimeout)
		err = client.Ping(ctx, nil)
		cancel()
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("integration test db did not become available: %s", err)
		}
		t.Log("could not connect to integration test db, will retry in a bit")
		time.Sleep(time.Second)
	}

	db := client.Database("pawtel_test")
	t.Cleanup(func() {
		db.Drop(context.Background())
		client.Disconnect(context.Background())
	})

	return db
}
