package experiments

import (
	"context"
	"reflect"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

type account struct {
	Balance int64
}

func (a *account) Deposit(x int64) int64 {
	a.Balance += x

	return a.Balance
}

// Proxy measures intercepted access the way a membrane proxy would do it:
// reflect.Value field reads/writes and reflect method calls against the
// direct equivalents.
func Proxy() suite.Experiment {
	return suite.Experiment{
		Name: "proxy",
		Doc:  "reflect.Value field and method access vs direct access",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			acc := &account{}

			val := reflect.ValueOf(acc).Elem()
			field := val.FieldByName("Balance")
			method := reflect.ValueOf(acc).MethodByName("Deposit")
			args := []reflect.Value{reflect.ValueOf(int64(1))}

			return runner.RunGroup(ctx, "proxy", []bench.Case{
				{Name: "direct-field-get", Baseline: true, Fn: func() {
					sinkInt64 = acc.Balance
				}},
				{Name: "reflect-field-get", Fn: func() {
					sinkInt64 = field.Int()
				}},
				{Name: "reflect-field-get-by-name", Fn: func() {
					sinkInt64 = val.FieldByName("Balance").Int()
				}},
				{Name: "direct-field-set", Fn: func() {
					acc.Balance = 7
				}},
				{Name: "reflect-field-set", Fn: func() {
					field.SetInt(7)
				}},
				{Name: "direct-method-call", Fn: func() {
					sinkInt64 = acc.Deposit(1)
				}},
				{Name: "reflect-method-call", Fn: func() {
					sinkInt64 = method.Call(args)[0].Int()
				}},
			})
		},
	}
}
