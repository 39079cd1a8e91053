package registryctl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

type printer struct {
	out    io.Writer
	format string
}

func (a *app) printer() (printer, error) {
	format := strings.ToLower(strings.TrimSpace(a.v.GetString("output")))
	switch format {
	case "", "text":
		return printer{out: a.opts.Out, format: "text"}, nil
	case "json", "yaml":
		return printer{out: a.opts.Out, format: format}, nil
	default:
		return printer{}, fmt.Errorf("unsupported output format %q", format)
	}
}

// print renders value in structured formats and text otherwise. Registry
// messages use protojson so field names match the proto definitions.
func (p printer) print(value any, text string) error {
	switch p.format {
	case "json":
		data, err := marshalJSON(value)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return err
		}
		out.WriteByte('\n')
		_, err = p.out.Write(out.Bytes())
		return err
	case "yaml":
		data, err := marshalJSON(value)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		encoder := yaml.NewEncoder(p.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(generic); err != nil {
			return err
		}
		return encoder.Close()
	default:
		_, err := fmt.Fprintln(p.out, text)
		return err
	}
}

func marshalJSON(value any) ([]byte, error) {
	if message, ok := value.(proto.Message); ok {
		return protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}.Marshal(message)
	}
	return json.Marshal(value)
}

func assetText(asset *registryv1.Asset) string {
	text := fmt.Sprintf("%s\towner=%s\tregistered_at=%s", asset.GetAssetHash(), asset.GetOwner(), asset.GetRegisteredAt().AsTime().Format(time.RFC3339Nano))
	if asset.GetMetadata() != "" {
		text += "\tmetadata=" + asset.GetMetadata()
	}
	return text
}

func eventText(event *registryv1.Event) string {
	label := strings.TrimPrefix(event.GetType().String(), "EVENT_TYPE_")
	switch event.GetType() {
	case registryv1.EventType_EVENT_TYPE_OWNERSHIP_TRANSFERRED:
		return fmt.Sprintf("%d\t%s\t%s\t%s -> %s", event.GetSequence(), label, event.GetAssetHash(), event.GetPreviousOwner(), event.GetNewOwner())
	default:
		return fmt.Sprintf("%d\t%s\t%s\towner=%s", event.GetSequence(), label, event.GetAssetHash(), event.GetOwner())
	}
}

// describeError renders registry failures with their domain code.
func describeError(err error) error {
	code := apperrors.CodeFromStatus(err)
	if code == apperrors.CodeUnknown {
		return err
	}
	return fmt.Errorf("%s: %s", code, apperrors.LocalizedMessageFromStatus(err))
}
