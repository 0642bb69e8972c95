package main

import (
	"flag"
	"fmt"
	"git.solver4all.com/azaryc2s/qap"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"os"
	"path"
	"strings"
)

var nodes qap.ArrayIntFlags
var clusters *int
var seed *int64
var output *string
var format *string
var name *string
var logLvl *int

func main() {
	flag.Var(&nodes, "n", "List of instance sizes (number of locations). Default 50")
	clusters = flag.Int("clusters", 5, "Number of location clusters")
	seed = flag.Int64("seed", 42, "Seed for the random stream")
	output = flag.String("out", "instances/meta_massive_50.txt", "Path to the output file. Additional sizes get the size appended to the file name")
	format = flag.String("format", qap.FORMAT_TXT, "Output format. txt (solver input) or json (instance with metadata)")
	name = flag.String("name", "meta", "Name for the instance")
	logLvl = flag.Int("log", 2, "Level of the logging output. Higher value is more verbose. Range 1-3")

	flag.Parse()
	qap.InitLoggers(*logLvl)

	if len(nodes) == 0 {
		nodes.Set("50")
	}

	var sys *qap.SysInfo
	if *format == qap.FORMAT_JSON {
		hostStat, _ := host.Info()
		cpuStat, _ := cpu.Info()
		vmStat, _ := mem.VirtualMemory()
		sys = &qap.SysInfo{Platform: hostStat.Platform, CPU: cpuStat[0].ModelName, RAM: fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}
	} else if *format != qap.FORMAT_TXT {
		qap.Log(1, "Unsupported format: %s\n", *format)
		os.Exit(1)
	}

	for i := 0; i < len(nodes); i++ {
		n := nodes[i]
		inst := qap.NewInstance(*name, n, *clusters, *seed)
		fileName := *output
		if i > 0 {
			fileName = batchFileName(*output, n)
		}
		var err error
		if *format == qap.FORMAT_JSON {
			inst.Comment = fmt.Sprintf("%s instance with %d locations in %d clusters, generated with seed %d", *name, n, *clusters, *seed)
			inst.System = sys
			err = qap.WriteInstanceJson(inst, fileName)
		} else {
			err = qap.WriteInstance(inst, fileName)
		}
		if err != nil {
			qap.Log(1, "At %s: %s\n", fileName, err.Error())
			os.Exit(1)
		}
		fmt.Printf("Wrote %s n= %d clusters= %d seed= %d\n", fileName, n, *clusters, *seed)
	}
}

func batchFileName(out string, n int) string {
	ext := path.Ext(out)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(out, ext), n, ext)
}
