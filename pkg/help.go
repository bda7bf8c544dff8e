package syncservice

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// HelpStatic generates the help output for static builds.
func HelpStatic() string {
	rtGrp, _ := settings.GroupFromComponent(&runhttp.Component{})
	svcGrp, _ := settings.GroupFromComponent(&ServiceComponent{})
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   "SYNCSERVICE",
		GroupValues: []settings.Group{svcGrp, rtGrp},
	}})
}
