package test

import (
	"fmt"
	"reflect"
	"time"

	"github.com/lawnchairsociety/dungeonforge/internal/preview"
	"github.com/lawnchairsociety/dungeonforge/internal/testclient"
)

const replyTimeout = 5 * time.Second

// =============================================================================
// Group 1: Connection
// =============================================================================

// TestReplayOnConnect checks that a new client receives the current dungeon.
func TestReplayOnConnect(url string) TestResult {
	const testName = "Replay On Connect"

	logAction(testName, "Connecting...")
	client, err := testclient.NewTestClient("replay", url)
	if err != nil {
		return fail(testName, "Failed to connect: %v", err)
	}
	defer client.Close()

	floor, ok := client.WaitForFrame(preview.FrameFloor, 2*time.Second)
	logResult(testName, ok, "Received floor frame")
	if !ok {
		return fail(testName, "No floor frame replayed")
	}
	if _, ok := client.WaitForFrame(preview.FrameWalls, time.Second); !ok {
		return fail(testName, "No walls frame replayed")
	}

	frames := client.GetFrames()
	if frames[0].Type != preview.FrameClear {
		return fail(testName, "First frame was %q, want %q", frames[0].Type, preview.FrameClear)
	}
	return pass(testName, "Replayed %d floor tiles", len(floor.Tiles))
}

// TestBroadcastToAllClients checks that a regenerate reaches every client.
func TestBroadcastToAllClients(url string) TestResult {
	const testName = "Broadcast To All Clients"

	a, err := testclient.NewTestClient("a", url)
	if err != nil {
		return fail(testName, "Client A failed to connect: %v", err)
	}
	defer a.Close()
	b, err := testclient.NewTestClient("b", url)
	if err != nil {
		return fail(testName, "Client B failed to connect: %v", err)
	}
	defer b.Close()

	waitForReplay(a)
	waitForReplay(b)
	a.ClearFrames()
	b.ClearFrames()

	logAction(testName, "Client A sends regenerate 1001")
	if err := a.SendCommand("regenerate 1001"); err != nil {
		return fail(testName, "Send failed: %v", err)
	}
	if _, ok := a.WaitForReply(replyTimeout); !ok {
		return fail(testName, "Client A got no reply")
	}

	_, ok := b.WaitForFrame(preview.FrameFloor, 2*time.Second)
	logResult(testName, ok, "Client B received floor frame")
	if !ok {
		return fail(testName, "Client B did not receive the new dungeon")
	}
	if b.HasMessage("seed 1001") {
		return fail(testName, "Status reply leaked to client B")
	}
	return pass(testName, "Both clients received the regenerated dungeon")
}

// =============================================================================
// Group 2: Commands
// =============================================================================

// TestRegenerateWithSeed checks the status reply for an explicit seed.
func TestRegenerateWithSeed(url string) TestResult {
	const testName = "Regenerate With Seed"

	client, err := testclient.NewTestClient("seed", url)
	if err != nil {
		return fail(testName, "Failed to connect: %v", err)
	}
	defer client.Close()
	waitForReplay(client)
	client.ClearFrames()

	if err := client.SendCommand("regenerate 42"); err != nil {
		return fail(testName, "Send failed: %v", err)
	}
	reply, ok := client.WaitForReply(replyTimeout)
	if !ok {
		return fail(testName, "No reply")
	}
	logResult(testName, reply.Type == preview.FrameStatus, reply.Message)
	if reply.Type != preview.FrameStatus {
		return fail(testName, "Got %s frame: %s", reply.Type, reply.Message)
	}
	if !client.HasMessage("seed 42") {
		return fail(testName, "Status %q does not name seed 42", reply.Message)
	}
	return pass(testName, "%s", reply.Message)
}

// TestRegenerateIsDeterministic checks that one seed always paints the
// same floor.
func TestRegenerateIsDeterministic(url string) TestResult {
	const testName = "Regenerate Is Deterministic"

	client, err := testclient.NewTestClient("determinism", url)
	if err != nil {
		return fail(testName, "Failed to connect: %v", err)
	}
	defer client.Close()
	waitForReplay(client)

	var floors [2][][2]int
	for i := range floors {
		client.ClearFrames()
		logAction(testName, fmt.Sprintf("Run %d: regenerate %d", i+1, DeterminismSeed))
		if err := client.SendCommand(fmt.Sprintf("regenerate %d", DeterminismSeed)); err != nil {
			return fail(testName, "Send failed: %v", err)
		}
		if _, ok := client.WaitForReply(replyTimeout); !ok {
			return fail(testName, "No reply on run %d", i+1)
		}
		floor, ok := client.WaitForFrame(preview.FrameFloor, time.Second)
		if !ok {
			return fail(testName, "No floor frame on run %d", i+1)
		}
		floors[i] = floor.Tiles
	}

	same := reflect.DeepEqual(floors[0], floors[1])
	logResult(testName, same, fmt.Sprintf("%d vs %d tiles", len(floors[0]), len(floors[1])))
	if !same {
		return fail(testName, "Seed %d painted different floors", DeterminismSeed)
	}
	return pass(testName, "Seed %d painted %d identical tiles twice", DeterminismSeed, len(floors[0]))
}

// TestRegenerateRandomSeed checks that a bare regenerate picks a seed.
func TestRegenerateRandomSeed(url string) TestResult {
	const testName = "Regenerate Random Seed"

	client, err := testclient.NewTestClient("random", url)
	if err != nil {
		return fail(testName, "Failed to connect: %v", err)
	}
	defer client.Close()
	waitForReplay(client)
	client.ClearFrames()

	if err := client.SendCommand("regenerate"); err != nil {
		return fail(testName, "Send failed: %v", err)
	}
	reply, ok := client.WaitForReply(replyTimeout)
	if !ok {
		return fail(testName, "No reply")
	}
	if reply.Type != preview.FrameStatus {
		return fail(testName, "Got %s frame: %s", reply.Type, reply.Message)
	}
	return pass(testName, "%s", reply.Message)
}

// TestInvalidSeed checks that a malformed seed is rejected.
func TestInvalidSeed(url string) TestResult {
	return expectError("Invalid Seed", url, "regenerate twelve", "invalid seed")
}

// TestUnknownCommand checks that unknown commands are rejected.
func TestUnknownCommand(url string) TestResult {
	return expectError("Unknown Command", url, "teleport 3 4", "unknown command")
}

func expectError(testName, url, command, want string) TestResult {
	client, err := testclient.NewTestClient("errors", url)
	if err != nil {
		return fail(testName, "Failed to connect: %v", err)
	}
	defer client.Close()
	waitForReplay(client)
	client.ClearFrames()

	logAction(testName, fmt.Sprintf("Sending %q", command))
	if err := client.SendCommand(command); err != nil {
		return fail(testName, "Send failed: %v", err)
	}
	reply, ok := client.WaitForReply(replyTimeout)
	if !ok {
		return fail(testName, "No reply")
	}
	if reply.Type != preview.FrameError || !client.HasMessage(want) {
		return fail(testName, "Got %s frame %q, want error containing %q", reply.Type, reply.Message, want)
	}
	return pass(testName, "%s", reply.Message)
}

// waitForReplay waits until the replayed walls frame arrives.
func waitForReplay(c *testclient.TestClient) {
	c.WaitForFrame(preview.FrameWalls, 2*time.Second)
}
