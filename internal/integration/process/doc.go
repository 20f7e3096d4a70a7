// Package process runs the editor's build and test commands.
//
// A Supervisor starts each command as a tracked child process with a
// unique ID, waits for it, and reports its exit status. Commands run
// through the shell with their standard streams detached, since the
// terminal belongs to the editor while they run:
//
//	sup := process.NewSupervisor(process.WithLimit(1))
//	defer sup.Shutdown(5 * time.Second)
//
//	res, err := sup.Run(ctx, "build", "make")
//	if err != nil {
//	    // the shell could not be started
//	}
//	fmt.Printf("Build finished with status %d\n", res.ExitCode)
//
// A Supervisor is safe for concurrent use. With WithLimit, Run refuses a
// command while too many others are still running.
package process
