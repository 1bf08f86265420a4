package stub

import (
	"errors"
	"net/http"
	"time"

	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/concave-dev/s3mctl/internal/validate"
	"github.com/concave-dev/s3mctl/internal/version"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ProvisionRequest is the provisioning body. The resource block may arrive
// under resourceOptions or resourceSettings, or inline as top-level keys.
type ProvisionRequest struct {
	Kind             string         `json:"kind" binding:"required"`
	Name             string         `json:"name" binding:"required,max=128"`
	ResourceOptions  map[string]any `json:"resourceOptions"`
	ResourceSettings map[string]any `json:"resourceSettings"`
}

// resources returns the resource block in whichever layout the client used.
func (r *ProvisionRequest) resources(raw map[string]any) map[string]any {
	switch {
	case r.ResourceOptions != nil:
		return r.ResourceOptions
	case r.ResourceSettings != nil:
		return r.ResourceSettings
	}

	inline := make(map[string]any)
	for k, v := range raw {
		if k != "kind" && k != "name" {
			inline[k] = v
		}
	}
	return inline
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Clusters  int       `json:"clusters"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version.S3mstubVersion,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Clusters:  s.registry.Len(),
	})
}

func (s *Server) handleProvision(c *gin.Context) {
	var req ProvisionRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid provisioning request: "+err.Error())
		return
	}
	var raw map[string]any
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid provisioning request: "+err.Error())
		return
	}
	if err := validate.ClusterNameFormat(req.Name); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid cluster name: "+err.Error())
		return
	}

	clusterType := c.Param("type")
	cluster, err := s.registry.Provision(clusterType, req.Name, req.Kind, req.resources(raw))
	if errors.Is(err, ErrClusterExists) {
		abortWithError(c, http.StatusConflict, "cluster "+req.Name+" already exists")
		return
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	logging.Info("Provisioned %s cluster %s (kind %s)", clusterType, cluster.Name, cluster.Kind)
	c.JSON(http.StatusCreated, cluster.Document(s.registry.Now()))
}

func (s *Server) handleExtend(c *gin.Context) {
	clusterType, name := c.Param("type"), c.Param("name")

	cluster, err := s.registry.Extend(clusterType, name)
	if err != nil {
		s.clusterError(c, name, err)
		return
	}

	logging.Info("Extended %s cluster %s until %s", clusterType, name, cluster.Expires.Format(time.RFC3339))
	c.JSON(http.StatusOK, cluster.Document(s.registry.Now()))
}

func (s *Server) handleGetCluster(c *gin.Context) {
	cluster, err := s.registry.Get(c.Param("type"), c.Param("name"))
	if err != nil {
		s.clusterError(c, c.Param("name"), err)
		return
	}
	c.JSON(http.StatusOK, cluster.Document(s.registry.Now()))
}

func (s *Server) handleListClusters(c *gin.Context) {
	now := s.registry.Now()
	clusters := s.registry.List(c.Param("type"))

	docs := make([]ClusterDocument, 0, len(clusters))
	for _, cluster := range clusters {
		docs = append(docs, cluster.Document(now))
	}
	c.JSON(http.StatusOK, gin.H{"clusters": docs})
}

func (s *Server) clusterError(c *gin.Context, name string, err error) {
	if errors.Is(err, ErrClusterNotFound) {
		abortWithError(c, http.StatusNotFound, "cluster "+name+" not found")
		return
	}
	abortWithError(c, http.StatusInternalServerError, err.Error())
}
