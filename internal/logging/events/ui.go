package events

import "github.com/atomicstack/git-pick/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) RefsLoaded(scope string, count int) {
	logging.Trace("ui.refs-loaded", map[string]interface{}{"scope": scope, "count": count})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Confirm(ref, action, filter string) {
	logging.Trace("ui.confirm", map[string]interface{}{
		"ref":    ref,
		"action": action,
		"filter": filter,
	})
}

func (UITracer) Cancel(mode string) {
	logging.Trace("ui.cancel", map[string]interface{}{"mode": mode})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (ActionTracer) Dispatch(action, ref string) {
	logging.Trace("action.dispatch", map[string]interface{}{"action": action, "ref": ref})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
