package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// workflowEncoder formats log entries as GitHub Actions workflow
// commands ("::notice::message") so they render as annotations in the
// workflow run. Structured fields are flattened to key=value pairs
// after the message.
type workflowEncoder struct {
	zapcore.Encoder // base encoder used only for field serialization
}

func newWorkflowEncoder() *workflowEncoder {
	base := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return &workflowEncoder{Encoder: base}
}

func (enc *workflowEncoder) Clone() zapcore.Encoder {
	return &workflowEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *workflowEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf := buffer.NewPool().Get()

	buf.AppendString(workflowPrefix(ent.Level))
	buf.AppendString(ent.Message)

	for _, field := range fields {
		buf.AppendString(" ")
		buf.AppendString(field.Key)
		buf.AppendString("=")
		buf.AppendString(fieldValue(field))
	}

	buf.AppendString("\n")
	return buf, nil
}

// workflowPrefix maps zap levels onto the workflow command vocabulary.
// GitHub only understands debug/notice/warning/error, so everything at
// Error and above collapses to ::error::.
func workflowPrefix(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "::debug::"
	case zapcore.InfoLevel:
		return "::notice::"
	case zapcore.WarnLevel:
		return "::warning::"
	default:
		return "::error::"
	}
}

func fieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", field.Integer)
	case zapcore.BoolType:
		return fmt.Sprintf("%t", field.Integer == 1)
	default:
		if field.Interface != nil {
			return fmt.Sprintf("%v", field.Interface)
		}
		return ""
	}
}
