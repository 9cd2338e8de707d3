package app

import (
	"k8s.io/klog/v2"
)

func checkErr(err error) {
	if err != nil {
		klog.Fatal(err)
	}
}
