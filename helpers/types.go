package helpers

import "reflect"

type Callback func()

func Typeof(v interface{}) string {
	return reflect.TypeOf(v).String()
}
