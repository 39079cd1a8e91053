package registryv1

import (
	"encoding/json"
	"testing"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestServiceDescMatchesDescriptor(t *testing.T) {
	var _ AssetRegistryServiceServer = UnimplementedAssetRegistryServiceServer{}

	svc := File_registry_v1_registry_proto.Services().ByName("AssetRegistryService")
	if svc == nil {
		t.Fatal("service missing from file descriptor")
	}
	if got := string(svc.FullName()); got != AssetRegistryService_ServiceDesc.ServiceName {
		t.Fatalf("service name = %q, desc = %q", got, AssetRegistryService_ServiceDesc.ServiceName)
	}
	want := []string{
		"RegisterAsset", "VerifyAsset", "TransferOwnership", "GetAssetCount",
		"AssetExists", "GetAssetHashAtIndex", "ListAssets", "ListEvents",
	}
	if len(AssetRegistryService_ServiceDesc.Methods) != len(want) {
		t.Fatalf("methods = %d, want %d", len(AssetRegistryService_ServiceDesc.Methods), len(want))
	}
	for i, name := range want {
		if got := AssetRegistryService_ServiceDesc.Methods[i].MethodName; got != name {
			t.Fatalf("method[%d] = %q, want %q", i, got, name)
		}
		if svc.Methods().ByName(protoreflect.Name(name)) == nil {
			t.Fatalf("descriptor missing %s", name)
		}
	}
	if len(AssetRegistryService_ServiceDesc.Streams) != 1 || !AssetRegistryService_ServiceDesc.Streams[0].ServerStreams {
		t.Fatal("expected WatchEvents server stream")
	}
	if watch := svc.Methods().ByName("WatchEvents"); watch == nil || !watch.IsStreamingServer() {
		t.Fatal("descriptor WatchEvents is not server streaming")
	}
}

func TestGettersAreNilSafe(t *testing.T) {
	var asset *Asset
	if asset.GetAssetHash() != "" || asset.GetOwner() != "" || asset.GetRegisteredAt() != nil {
		t.Fatal("expected zero values from nil asset")
	}
	var resp *TransferOwnershipResponse
	if resp.GetAsset() != nil || resp.GetPreviousOwner() != "" {
		t.Fatal("expected zero values from nil response")
	}
	var list *ListAssetsRequest
	if list.GetPageSize() != 0 || list.GetPageToken() != "" {
		t.Fatal("expected zero values from nil list request")
	}
}

func TestEventBinaryRoundTrip(t *testing.T) {
	event := &Event{
		Sequence:      3,
		Type:          EventType_EVENT_TYPE_OWNERSHIP_TRANSFERRED,
		AssetHash:     "sha256/h1",
		PreviousOwner: "alice",
		NewOwner:      "bob",
		OccurredAt:    timestamppb.New(time.Unix(100, 0)),
	}
	data, err := proto.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Event
	if err := proto.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(event, &got) {
		t.Fatalf("round trip = %v, want %v", &got, event)
	}
}

func TestEventJSONNames(t *testing.T) {
	data, err := protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}.Marshal(&Event{
		Sequence:      3,
		Type:          EventType_EVENT_TYPE_OWNERSHIP_TRANSFERRED,
		AssetHash:     "h1",
		PreviousOwner: "alice",
		NewOwner:      "bob",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"sequence":       "3",
		"type":           "EVENT_TYPE_OWNERSHIP_TRANSFERRED",
		"asset_hash":     "h1",
		"owner":          "",
		"previous_owner": "alice",
		"new_owner":      "bob",
		"occurred_at":    nil,
	}
	if len(fields) != len(want) {
		t.Fatalf("fields = %v", fields)
	}
	for key, value := range want {
		if fields[key] != value {
			t.Fatalf("%s = %v, want %v", key, fields[key], value)
		}
	}
}
