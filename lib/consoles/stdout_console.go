package consoles

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

type stdoutConsole struct {
	mutex    sync.Mutex
	prefixes []string
}

func NewStdOutConsole() Console {
	return &stdoutConsole{}
}

func (o *stdoutConsole) Printf(format string, a ...any) {
	o.write(os.Stdout, "", format, a...)
}

func (o *stdoutConsole) Errorf(format string, a ...any) {
	o.write(os.Stderr, "ERROR ", format, a...)
}

func (o *stdoutConsole) write(out *os.File, level string, format string, a ...any) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	builder.WriteString(level)
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = out.WriteString(builder.String())
}

func (o *stdoutConsole) PushPrefix(format string, a ...any) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *stdoutConsole) PopPrefix() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if len(o.prefixes) > 0 {
		o.prefixes = o.prefixes[:len(o.prefixes)-1]
	}
}
