package model

// Dashboard aggregates widgets rendered by the generated frontend. Widget
// variants live in per-variant slices like the flow element container does.
type Dashboard struct {
	Name    string           `yaml:"name" json:"name"`
	Title   string           `yaml:"title,omitempty" json:"title,omitempty"`
	Widgets WidgetsContainer `yaml:",inline" json:",inline"`
}

type WidgetsContainer struct {
	ProcessInstanceLists []ProcessInstanceListWidget `yaml:"processInstanceLists,omitempty" json:"processInstanceLists,omitempty"`
	TaskLists            []TaskListWidget            `yaml:"taskLists,omitempty" json:"taskLists,omitempty"`
	ProcessMetrics       []ProcessMetricsWidget      `yaml:"processMetrics,omitempty" json:"processMetrics,omitempty"`
	CustomCharts         []CustomChartWidget         `yaml:"customCharts,omitempty" json:"customCharts,omitempty"`
}

type WidgetType string

const (
	WidgetTypeProcessInstanceList WidgetType = "PROCESS_INSTANCE_LIST"
	WidgetTypeTaskList            WidgetType = "TASK_LIST"
	WidgetTypeProcessMetrics      WidgetType = "PROCESS_METRICS"
	WidgetTypeCustomChart         WidgetType = "CUSTOM_CHART"
)

type Widget interface {
	GetName() string
	GetWidgetType() WidgetType
}

type BaseWidget struct {
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
}

func (w BaseWidget) GetName() string { return w.Name }

// ProcessInstanceListWidget lists running instances of a process.
type ProcessInstanceListWidget struct {
	BaseWidget `yaml:",inline" json:",inline"`
	Process    string       `yaml:"process" json:"process"`
	Columns    []string     `yaml:"columns" json:"columns"`
	Actions    []ActionType `yaml:"actions,omitempty" json:"actions,omitempty"`
}

func (w *ProcessInstanceListWidget) GetWidgetType() WidgetType { return WidgetTypeProcessInstanceList }

// TaskListWidget lists open tasks for the current user.
type TaskListWidget struct {
	BaseWidget `yaml:",inline" json:",inline"`
	Columns    []string     `yaml:"columns" json:"columns"`
	Actions    []ActionType `yaml:"actions,omitempty" json:"actions,omitempty"`
}

func (w *TaskListWidget) GetWidgetType() WidgetType { return WidgetTypeTaskList }

// ProcessMetricsWidget renders aggregate numbers for a process.
type ProcessMetricsWidget struct {
	BaseWidget `yaml:",inline" json:",inline"`
	Process    string   `yaml:"process" json:"process"`
	Metrics    []string `yaml:"metrics" json:"metrics"`
}

func (w *ProcessMetricsWidget) GetWidgetType() WidgetType { return WidgetTypeProcessMetrics }

// CustomChartWidget renders a chart over an arbitrary data source.
type CustomChartWidget struct {
	BaseWidget `yaml:",inline" json:",inline"`
	ChartType  ChartType `yaml:"chartType" json:"chartType"`
	DataSource string    `yaml:"dataSource" json:"dataSource"`
}

func (w *CustomChartWidget) GetWidgetType() WidgetType { return WidgetTypeCustomChart }

// Widgets returns every widget of the dashboard in container order.
func (c *WidgetsContainer) Widgets() []Widget {
	widgets := make([]Widget, 0,
		len(c.ProcessInstanceLists)+len(c.TaskLists)+len(c.ProcessMetrics)+len(c.CustomCharts))
	for i := range c.ProcessInstanceLists {
		widgets = append(widgets, &c.ProcessInstanceLists[i])
	}
	for i := range c.TaskLists {
		widgets = append(widgets, &c.TaskLists[i])
	}
	for i := range c.ProcessMetrics {
		widgets = append(widgets, &c.ProcessMetrics[i])
	}
	for i := range c.CustomCharts {
		widgets = append(widgets, &c.CustomCharts[i])
	}
	return widgets
}
